package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traso/internal/domain/catalogs/item"
	"traso/internal/domain/ledger"
)

func TestExtractDBColumns_Item(t *testing.T) {
	cols := ExtractDBColumns[item.Item]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "is_active")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "unit")
	assert.Contains(t, cols, "unit_price")
	assert.Contains(t, cols, "current_stock")
	assert.Contains(t, cols, "min_stock")
}

func TestExtractDBColumns_LedgerEntry(t *testing.T) {
	cols := ExtractDBColumns[ledger.Entry]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "item_id")
	assert.Contains(t, cols, "direction")
	assert.Contains(t, cols, "quantity")
	assert.Contains(t, cols, "entry_date")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")
}

func TestStructToMap_FlattensEmbedded(t *testing.T) {
	it := item.New("Trà sen", "kg")
	it.UnitPrice = decimal.NewFromInt(120000)

	m := StructToMap(it)
	require.NotNil(t, m)

	assert.Equal(t, it.ID, m["id"])
	assert.Equal(t, true, m["is_active"])
	assert.Equal(t, 1, m["version"])
	assert.Equal(t, "Trà sen", m["name"])
	assert.Equal(t, "kg", m["unit"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("hello"))
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	type row struct {
		Keep string `db:"keep"`
		Skip string `db:"-"`
		None string
	}

	m := StructToMap(row{Keep: "a", Skip: "b", None: "c"})

	assert.Equal(t, map[string]any{"keep": "a"}, m)
}
