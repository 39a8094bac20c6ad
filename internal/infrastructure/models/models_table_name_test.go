package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	require.Equal(t, "users", User{}.TableName())
	require.Equal(t, "profiles", Profile{}.TableName())
	require.Equal(t, "consultant_reviews", ConsultantReview{}.TableName())
	require.Equal(t, "consultant_missions", ConsultantMission{}.TableName())
	require.Equal(t, "sparks", Spark{}.TableName())
	require.Equal(t, "clients", Client{}.TableName())
}
