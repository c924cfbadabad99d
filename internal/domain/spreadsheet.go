package domain

import "time"

// RawTable é o conteúdo bruto de uma aba da planilha, com o cabeçalho original
type RawTable struct {
	Path     string
	Sheet    string
	Headers  []string
	Rows     [][]string
	ModTime  time.Time
	Size     int64
	LoadedAt time.Time
	Version  string
}

// SpreadsheetCacheStatus descreve o estado do cache da planilha
type SpreadsheetCacheStatus struct {
	Path     string    `json:"path"`
	Cached   bool      `json:"cached"`
	Version  string    `json:"version,omitempty"`
	ModTime  time.Time `json:"mod_time,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	Rows     int       `json:"rows"`
	Hits     int64     `json:"hits"`
	Misses   int64     `json:"misses"`
}
