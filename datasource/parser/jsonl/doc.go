// Package jsonl parses JSON Lines data into a Matrix. This parser uses https://github.com/tidwall/gjson to process data, and supports Schema column names formatted as gjson paths.
package jsonl
