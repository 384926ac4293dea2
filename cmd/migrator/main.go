/*
 * Main - Route 53 zone migrator entry point.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"route53-zone-migrator/internal/model"
	"route53-zone-migrator/internal/prompt"

	log "github.com/sirupsen/logrus"
)

// main function
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx)
	stop()
	os.Exit(code)
}

// execute runs the root command and returns the process exit code.
func execute(ctx context.Context) int {
	cmd := newRootCommand(migrate)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logFailure(err)
		return 1
	}
	return 0
}

// logFailure logs the error that stopped the run.
func logFailure(err error) {
	switch {
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, context.Canceled):
		log.Error("Migration interrupted")
	default:
		if code := model.ErrorCode(err); code != "" {
			log.WithField("code", code).Errorf("Migration failed: %v", err)
			return
		}
		log.Errorf("Migration failed: %v", err)
	}
}
