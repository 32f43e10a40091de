// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fabline Oy

package tui

import "strings"

func humanizePlantError(msg string) string {
	s := strings.ToLower(msg)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер завода недоступен"
	}

	return msg
}
