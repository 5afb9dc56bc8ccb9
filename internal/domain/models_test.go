package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerCode(t *testing.T) {
	assert.Equal(t, "123", CustomerCode("123*4"))
	assert.Equal(t, "123", CustomerCode("123"))
	assert.Equal(t, "00123", CustomerCode("00123*1"))
	assert.Equal(t, "", CustomerCode(""))
}
