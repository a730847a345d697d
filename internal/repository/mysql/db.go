package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the store connection. The handle owns the connection pool and
// is passed into every repository; there is no package-level state.
func InitDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
