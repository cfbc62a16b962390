package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-desk/logger"
	"hotel-desk/models"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	mc := mysql.NewConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(u.Hostname(), port)
	mc.DBName = dbName
	mc.Params = map[string]string{}
	for key, values := range u.Query() {
		switch key {
		case "parseTime", "loc":
			// always forced below
		default:
			if len(values) > 0 {
				mc.Params[key] = values[0]
			}
		}
	}
	normalizeMySQL(mc, u.Query().Get("charset") != "")
	return mc.FormatDSN(), dbName, nil
}

// normalizeMySQL forces parseTime and local time, and defaults the charset to
// utf8mb4 unless the source already named one.
func normalizeMySQL(mc *mysql.Config, hasCharset bool) {
	if mc.Params == nil {
		mc.Params = map[string]string{}
	}
	if !hasCharset {
		mc.Params["charset"] = "utf8mb4"
	}
	mc.ParseTime = true
	mc.Loc = time.Local
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		mc, err := mysql.ParseDSN(raw)
		if err != nil {
			return "", "", err
		}
		normalizeMySQL(mc, strings.Contains(raw, "charset="))
		return mc.FormatDSN(), mc.DBName, nil
	}

	mc := mysql.NewConfig()
	mc.User = envOrDefault("DB_USER", "root")
	mc.Passwd = os.Getenv("DB_PASS")
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(envOrDefault("DB_HOST", "127.0.0.1"), envOrDefault("DB_PORT", "3306"))
	mc.DBName = envOrDefault("DB_NAME", "hotel_db")
	normalizeMySQL(mc, false)
	return mc.FormatDSN(), mc.DBName, nil
}

// ConnectDatabase opens the configured store and migrates the schema. The
// memory driver has no store and returns a nil handle.
func ConnectDatabase(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case DriverMemory, "":
		return nil, nil
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case DriverMySQL:
		dialector = gormmysql.Open(cfg.MySQLDSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	newLogger := gormlogger.New(
		log.StdLog(),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
	}

	if err := db.AutoMigrate(
		&models.HotelSetting{},
		&models.Room{},
		&models.Employee{},
		&models.RoomOperation{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("database ready", "driver", cfg.StorageDriver)
	return db, nil
}
