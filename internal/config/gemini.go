package config

import "os"

type GeminiConfig struct {
	ApiKey string
	Url    string
}

func NewGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		ApiKey: os.Getenv("GEMINI_API_KEY"),
		Url:    getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"),
	}
}
