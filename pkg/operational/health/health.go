/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package health

import (
	"github.com/heptiolabs/healthcheck"
)

// Checker is implemented by the pipeline
type Checker interface {
	IsAlive() healthcheck.Check
	IsReady() healthcheck.Check
}

// NewHandler serves "/live" and "/ready" from the checker state
func NewHandler(checker Checker) healthcheck.Handler {
	handler := healthcheck.NewHandler()
	handler.AddLivenessCheck("PipelineCheck", checker.IsAlive())
	handler.AddReadinessCheck("ASTableCheck", checker.IsReady())
	return handler
}
