package spreadsheet

import (
	"context"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-flash-api/internal/domain"
)

// Cache é um Loader que guarda a última leitura e permite descartá-la
type Cache interface {
	Loader
	Invalidate()
	Status() domain.SpreadsheetCacheStatus
}

// CachedLoader mantém a última leitura da planilha enquanto o arquivo não muda.
// A entrada é invalidada quando a data de modificação ou o tamanho do arquivo mudam.
type CachedLoader struct {
	path   string
	loader Loader
	stat   func(name string) (os.FileInfo, error)

	mu     sync.Mutex
	entry  *domain.RawTable
	hits   int64
	misses int64
}

// NewCachedLoader envolve um Loader com cache invalidado por modificação do arquivo
func NewCachedLoader(path string, loader Loader) *CachedLoader {
	return &CachedLoader{
		path:   path,
		loader: loader,
		stat:   os.Stat,
	}
}

func (c *CachedLoader) Load(ctx context.Context) (*domain.RawTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.stat(c.path)
	if err != nil {
		// Arquivo removido ou inacessível não pode ser mascarado por dado antigo
		c.entry = nil
		return nil, &FileReadError{Path: c.path, Err: err}
	}

	if c.entry != nil && c.entry.ModTime.Equal(info.ModTime()) && c.entry.Size == info.Size() {
		c.hits++
		return c.entry, nil
	}

	c.misses++

	table, err := c.loader.Load(ctx)
	if err != nil {
		c.entry = nil
		return nil, err
	}

	if c.entry != nil {
		logrus.WithFields(logrus.Fields{
			"path":             c.path,
			"previous_version": c.entry.Version,
			"version":          table.Version,
		}).Info("Planilha modificada, cache atualizado")
	}

	table.ModTime = info.ModTime()
	table.Size = info.Size()
	c.entry = table

	return table, nil
}

// Invalidate descarta a leitura em cache
func (c *CachedLoader) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = nil
}

// Status retorna o estado atual do cache
func (c *CachedLoader) Status() domain.SpreadsheetCacheStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := domain.SpreadsheetCacheStatus{
		Path:   c.path,
		Hits:   c.hits,
		Misses: c.misses,
	}

	if c.entry != nil {
		status.Cached = true
		status.Version = c.entry.Version
		status.ModTime = c.entry.ModTime
		status.LoadedAt = c.entry.LoadedAt
		status.Rows = len(c.entry.Rows)
	}

	return status
}
