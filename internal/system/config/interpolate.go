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

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// substitutionPattern matches ${VAR}, ${VAR:-default}, ${VAR-default} and the $$ escape.
var substitutionPattern = regexp.MustCompile(`\$(\$|\{[A-Za-z_][A-Za-z0-9_]*(?::?-[^}]*)?\})`)

// interpolateEnvironment substitutes environment variable references in the given
// configuration text with shell-style default value support:
//
//	${VAR}          value of VAR; an error if VAR is unset
//	${VAR:-default} value of VAR, or default when VAR is unset or empty
//	${VAR-default}  value of VAR, or default only when VAR is unset
//	$$              a literal dollar sign
func interpolateEnvironment(content string) (string, error) {
	var substErr error

	result := substitutionPattern.ReplaceAllStringFunc(content, func(match string) string {
		if match == "$$" {
			return "$"
		}

		// Strip the surrounding "${" and "}".
		expr := match[2 : len(match)-1]

		if idx := strings.Index(expr, ":-"); idx != -1 {
			name, def := expr[:idx], expr[idx+2:]
			if value := os.Getenv(name); value != "" {
				return value
			}
			return def
		}

		if idx := strings.Index(expr, "-"); idx != -1 {
			name, def := expr[:idx], expr[idx+1:]
			if value, ok := os.LookupEnv(name); ok {
				return value
			}
			return def
		}

		value, ok := os.LookupEnv(expr)
		if !ok && substErr == nil {
			substErr = fmt.Errorf("could not substitute environment variable: %s", expr)
		}
		return value
	})

	if substErr != nil {
		return "", substErr
	}
	return result, nil
}
