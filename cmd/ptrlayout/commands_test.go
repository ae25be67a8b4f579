package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ptrkit/pkg/config/xconf"
)

func TestBuildTable(t *testing.T) {
	t.Run("powers of two up to max", func(t *testing.T) {
		reports, err := buildTable(64, 4096)
		require.NoError(t, err)
		require.Len(t, reports, 13) // 2^0 .. 2^12

		assert.Equal(t, uint64(1), reports[0].Align)
		assert.Equal(t, uint64(0), reports[0].StateBits)
		assert.Equal(t, uint64(4096), reports[12].Align)
		assert.Equal(t, uint64(12), reports[12].StateBits)
	})

	t.Run("rejects non power of two max", func(t *testing.T) {
		_, err := buildTable(64, 100)
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr)
	})
}

func TestBuildBatch(t *testing.T) {
	t.Run("yaml config", func(t *testing.T) {
		data := []byte(`
word: 64
entries:
  - name: node
    align: 8
  - name: page
    align: 4096
    bits: 3
  - name: small
    align: 4
    word: 32
`)
		cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
		require.NoError(t, err)

		reports, err := buildBatch(cfg)
		require.NoError(t, err)
		require.Len(t, reports, 3)

		assert.Equal(t, "node", reports[0].Name)
		assert.Equal(t, uint64(3), reports[0].StateBits)

		// 显式收窄优先于对齐推导
		assert.Equal(t, uint64(3), reports[1].StateBits)
		assert.Equal(t, uint64(4096), reports[1].Align)

		// 条目级字宽覆盖文件级默认
		assert.Equal(t, uint64(32), reports[2].Word)
		assert.Equal(t, uint64(2), reports[2].StateBits)
	})

	t.Run("explicit zero bits is honored", func(t *testing.T) {
		data := []byte(`{"entries": [{"name": "n", "align": 8, "bits": 0}]}`)
		cfg, err := xconf.NewFromBytes(data, xconf.FormatJSON)
		require.NoError(t, err)

		reports, err := buildBatch(cfg)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), reports[0].StateBits)
	})

	t.Run("empty entries", func(t *testing.T) {
		cfg, err := xconf.NewFromBytes([]byte(`{"entries": []}`), xconf.FormatJSON)
		require.NoError(t, err)

		_, err = buildBatch(cfg)
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("invalid entry reports its index", func(t *testing.T) {
		data := []byte(`{"entries": [{"name": "bad", "align": 3}]}`)
		cfg, err := xconf.NewFromBytes(data, xconf.FormatJSON)
		require.NoError(t, err)

		_, err = buildBatch(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entries[0]")
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr)
	})
}

func TestRunExitCodes(t *testing.T) {
	t.Run("usage error exits 2", func(t *testing.T) {
		code := run([]string{"ptrlayout", "report", "--align", "3"})
		assert.Equal(t, 2, code)
	})

	t.Run("valid report exits 0", func(t *testing.T) {
		code := run([]string{"ptrlayout", "report", "--align", "8"})
		assert.Equal(t, 0, code)
	})

	t.Run("missing config exits 1", func(t *testing.T) {
		code := run([]string{"ptrlayout", "batch", "--config", "absent.yaml"})
		assert.Equal(t, 1, code)
	})
}
