// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory backends and fixtures for tests.
package audiotest
