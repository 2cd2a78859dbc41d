package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	AppAuthKey string
	AppEncKey  string
	APP_ENV    string

	// CheckoutApplyCoupon makes Checkout honor a coupon code on the persisted
	// order total. Off by default: the coupon is display-only at cart view.
	CheckoutApplyCoupon bool
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	applyCoupon, _ := strconv.ParseBool(os.Getenv("CHECKOUT_APPLY_COUPON"))

	return ENV{
		DBHost:              os.Getenv("DB_HOST"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              os.Getenv("DB_PORT"),
		Port:                os.Getenv("APP_PORT"),
		AppAuthKey:          os.Getenv("APP_AUTH_KEY"),
		AppEncKey:           os.Getenv("APP_ENC_KEY"),
		APP_ENV:             os.Getenv("APP_ENV"),
		CheckoutApplyCoupon: applyCoupon,
	}

}

var LoadENV = LoadEnv()
