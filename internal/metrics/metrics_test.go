package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	DaysSimulated.Inc()
	ItemsUpdated.WithLabelValues("CONJURED").Inc()

	path := filepath.Join(t.TempDir(), "gildedrose.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# HELP "+MetricNameDaysSimulated)
	assert.Contains(t, string(data), MetricNameItemsUpdated+`{category="CONJURED"}`)
}

func TestWriteTextfile_MissingDirectory(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "nope", "gildedrose.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics")
}
