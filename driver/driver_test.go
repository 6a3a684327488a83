package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSNFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")

	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/school_portal?charset=utf8mb4", dsnFromEnv())
}

func TestDSNFromEnvExplicit(t *testing.T) {
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "school")

	assert.Equal(t, "portal:hunter2@tcp(db.internal:3307)/school?charset=utf8mb4", dsnFromEnv())
}
