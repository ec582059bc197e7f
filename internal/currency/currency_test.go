package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestINR(t *testing.T) {
	assert.Equal(t, "₹1,161,695.38", INR(decimal.RequireFromString("1161695.3811")))
	assert.Equal(t, "₹0.00", INR(decimal.Zero))
	assert.Equal(t, "-₹250.50", INR(decimal.RequireFromString("-250.5")))
}

func TestINRFloat(t *testing.T) {
	assert.Equal(t, "₹8,678.23", INRFloat(8678.2261))
}

func TestFormat_UnknownCurrency(t *testing.T) {
	assert.Equal(t, "12.30", Format(decimal.RequireFromString("12.3"), "???"))
}
