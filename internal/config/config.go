package config

import "os"

type Config struct {
	RestaurantName string
	RestaurantLogo string
}

func Load() *Config {
	return &Config{
		RestaurantName: getEnv("RESTAURANT_NAME", "Verdante"),
		RestaurantLogo: getEnv("RESTAURANT_LOGO", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
