package handler

import (
	"fmt"
	"strconv"
	"strings"
)

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

func parsePagination(pageRaw, limitRaw string) (int, int, error) {
	page, err := parseIntParam(pageRaw, 1)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page")
	}
	limit, err := parseIntParam(limitRaw, 20)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid limit")
	}
	return page, limit, nil
}
