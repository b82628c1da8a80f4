package mysql

import (
	"fmt"
	"subpost/models"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func InitMySQL() {
	dbHost := viper.Get("mysql.host")
	dbPort := viper.GetInt("mysql.port")
	userName := viper.Get("mysql.username")
	password := viper.Get("mysql.password")
	database := viper.Get("mysql.database")
	charset := viper.Get("mysql.charset")
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local", userName, password, dbHost, dbPort, database, charset)
	debug := viper.GetBool("mysql.debug")
	var err error
	if debug {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Info)})
	} else {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		panic(fmt.Sprintf("mysql: %s", err.Error()))
	}
	initTables()
}

// 测试环境注入（sqlite 等），同样走建表逻辑
func InitWithDB(d *gorm.DB) {
	db = d
	initTables()
}

func initTables() {
	db.AutoMigrate(&models.User{})
	db.AutoMigrate(&models.Space{})
	db.AutoMigrate(&models.Post{})
	db.AutoMigrate(&models.ReplyIndex{})
}

func GetDB() *gorm.DB {
	return db
}

func getUseDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
