/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import "strings"

// ParseStringArray parses a comma-separated string value into a slice of strings.
func ParseStringArray(value interface{}) []string {
	if value == nil {
		return []string{}
	}
	str, ok := value.(string)
	if !ok || str == "" {
		return []string{}
	}
	return strings.Split(str, ",")
}

// JoinStringArray joins a slice of strings into a single comma-separated string.
func JoinStringArray(values []string) string {
	return strings.Join(values, ",")
}
