package format_test

import (
	"testing"

	"github.com/bintangp/go-marketplace/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", format.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", format.Money(decimal.Zero))
}
