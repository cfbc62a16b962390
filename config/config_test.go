package config

import (
	"testing"

	"hotel-desk/logger"
	"hotel-desk/models"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "LOG_MODE", "HOTEL_NAME", "STORAGE_DRIVER", "CORS_ORIGINS", "HOTEL_API_KEY", "HOTEL_API_KEY_HASH", "SEED_DEMO"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "Grand Hotel", cfg.HotelName)
		assert.Equal(t, DriverMemory, cfg.StorageDriver)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.False(t, cfg.SeedDemo)
	})

	t.Run("should read overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("HOTEL_NAME", "Hotel Central")
		t.Setenv("STORAGE_DRIVER", "SQLite")
		t.Setenv("SQLITE_PATH", "/tmp/desk.db")
		t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
		t.Setenv("SEED_DEMO", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "Hotel Central", cfg.HotelName)
		assert.Equal(t, DriverSQLite, cfg.StorageDriver)
		assert.Equal(t, "/tmp/desk.db", cfg.SQLitePath)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.True(t, cfg.SeedDemo)
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown STORAGE_DRIVER "postgres"`)
	})

	t.Run("should build a mysql dsn from parts", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mysql")
		t.Setenv("MYSQL_URL", "")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "desk")
		t.Setenv("DB_PASS", "secret")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "3307")
		t.Setenv("DB_NAME", "frontdesk")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "frontdesk", cfg.MySQLDBName)
		mc, err := mysql.ParseDSN(cfg.MySQLDSN)
		require.NoError(t, err)
		assert.Equal(t, "desk", mc.User)
		assert.Equal(t, "secret", mc.Passwd)
		assert.Equal(t, "db.internal:3307", mc.Addr)
		assert.True(t, mc.ParseTime)
		assert.Contains(t, cfg.MySQLDSN, "charset=utf8mb4")
	})
}

func TestMySQLDSNFromURL(t *testing.T) {
	t.Run("should convert a mysql url", func(t *testing.T) {
		dsn, dbName, err := mysqlDSNFromURL("mysql://desk:pw@db.internal/frontdesk?charset=latin1&parseTime=false")

		require.NoError(t, err)
		assert.Equal(t, "frontdesk", dbName)
		mc, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "db.internal:3306", mc.Addr)
		assert.Contains(t, dsn, "charset=latin1")
		assert.True(t, mc.ParseTime)
	})

	t.Run("should require a database name", func(t *testing.T) {
		_, _, err := mysqlDSNFromURL("mysql://desk:pw@db.internal/")

		require.Error(t, err)
	})
}

func TestConnectDatabase(t *testing.T) {
	t.Run("should return no handle for memory storage", func(t *testing.T) {
		db, err := ConnectDatabase(Config{StorageDriver: DriverMemory}, logger.Nop())

		require.NoError(t, err)
		assert.Nil(t, db)
	})

	t.Run("should open and migrate sqlite", func(t *testing.T) {
		db, err := ConnectDatabase(Config{
			StorageDriver: DriverSQLite,
			SQLitePath:    "file:config_test?mode=memory&cache=shared",
		}, logger.Nop())

		require.NoError(t, err)
		require.NotNil(t, db)
		assert.True(t, db.Migrator().HasTable(&models.Room{}))
		assert.True(t, db.Migrator().HasTable(&models.Employee{}))
		assert.True(t, db.Migrator().HasTable(&models.RoomOperation{}))
		assert.True(t, db.Migrator().HasTable(&models.HotelSetting{}))
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		_, err := ConnectDatabase(Config{StorageDriver: "oracle"}, logger.Nop())

		require.Error(t, err)
	})
}
