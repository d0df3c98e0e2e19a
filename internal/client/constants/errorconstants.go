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

package constants

import "github.com/asgardeo/gate/internal/system/error/serviceerror"

// ErrorInvalidClientRequest is returned when the client request validation fails.
var ErrorInvalidClientRequest = &serviceerror.ServiceError{
	Code:             "CLI-1001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid client request.",
	ErrorDescription: "The request is missing required client details.",
}

// ErrorClientNotFound is returned when the requested client is not registered.
var ErrorClientNotFound = &serviceerror.ServiceError{
	Code:             "CLI-1002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Client not found.",
	ErrorDescription: "No client is registered with the given client id.",
}

// ErrorInternalServerError is returned when an unexpected error occurs while serving the request.
var ErrorInternalServerError = &serviceerror.ServiceError{
	Code:             "CLI-5001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Internal server error.",
	ErrorDescription: "An unexpected error occurred while processing the request.",
}
