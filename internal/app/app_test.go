package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKaamKaajApp_Initializers(t *testing.T) {
	app := NewKaamKaajApp()
	require.NotNil(t, app, "NewKaamKaajApp should not return nil")
}
