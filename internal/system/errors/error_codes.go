/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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

package errors

const errorPrefix = "RRS-"

var (
	// Server error codes

	MERGE_INPUTS_ABSENT = ErrorMessage{
		Code:        errorPrefix + "15001",
		Message:     "Merge invoked without any source record.",
		Description: "The merge engine requires at least one source record. This indicates a caller bug.",
	}

	SOURCE_A_QUERY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while querying source A.",
	}

	SOURCE_B_QUERY = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while querying source B.",
	}

	RECORD_CONSTRUCTION = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while constructing a source record.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while marshalling JSON.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	RECORD_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Record not found.",
		Description: "No customer record found in either source for the given email.",
	}

	INVALID_EMAIL = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Invalid email.",
		Description: "The given email is not a valid email address.",
	}

	MISSING_QUERY_PARAM = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Missing query parameter.",
	}
)
