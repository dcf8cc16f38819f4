package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Mongo      MongoConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Attendance AttendanceConfig
	NLP        NLPConfig
	Scoring    ScoringConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// MongoConfig configuración de MongoDB (document store de SmartHR).
type MongoConfig struct {
	URI    string // ej. mongodb://localhost:27017
	DBName string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AttendanceConfig reglas de negocio del módulo de asistencia por rostro.
type AttendanceConfig struct {
	SimThreshold float64 // similitud coseno mínima para aceptar un match
	CutoffTime   string  // HH:MM local; después de esta hora el scan cuenta como salida (OUT)
	LateStart    string  // HH:MM inicio de la ventana de tardanza
	LateCutoff   string  // HH:MM fin (inclusive) de la ventana de tardanza
	Timezone     string  // zona horaria local del negocio, ej. Asia/Colombo
	YuNetModel   string  // ruta al ONNX del detector YuNet
	SFaceModel   string  // ruta al ONNX del reconocedor SFace
}

// Location resuelve la zona horaria configurada.
func (c AttendanceConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("zona horaria %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// NLPConfig configuración del router NLP y el resumidor opcional.
type NLPConfig struct {
	GeminiAPIKey  string
	RouterModel   string
	UseLLMRouter  bool // false = solo reglas (útil para depurar sin red)
	UseSummarizer bool
}

// ScoringConfig configuración de los endpoints de scoring ML.
type ScoringConfig struct {
	ScorerURL            string  // servicio externo que sirve los pipelines entrenados
	PrehireThreshold     float64 // High/Low para riesgo de attrition y turnover
	PerformanceThreshold float64 // High/Low para ranking de desempeño
	TimeoutSeconds       int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGO_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "smarthr"),
		},
		Mongo: MongoConfig{
			URI:    getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			DBName: getString(v, "MONGO_DB", "smarthr"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "smarthr"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Attendance: AttendanceConfig{
			SimThreshold: getFloat(v, "ATTENDANCE_SIM_THRESHOLD", 0.45),
			CutoffTime:   getString(v, "ATTENDANCE_CUTOFF_TIME", "12:01"),
			LateStart:    getString(v, "LATE_START_TIME", "09:10"),
			LateCutoff:   getString(v, "LATE_CUTOFF_TIME", "12:00"),
			Timezone:     getString(v, "ATTENDANCE_TIMEZONE", "Asia/Colombo"),
			YuNetModel:   getString(v, "YUNET_MODEL_PATH", "models/face_detection_yunet_2023mar.onnx"),
			SFaceModel:   getString(v, "SFACE_MODEL_PATH", "models/face_recognition_sface_2021dec.onnx"),
		},
		NLP: NLPConfig{
			GeminiAPIKey:  getString(v, "GEMINI_API_KEY", ""),
			RouterModel:   getString(v, "NLP_ROUTER_MODEL", "gemini-2.5-flash"),
			UseLLMRouter:  getBool(v, "NLP_USE_LLM_ROUTER", true),
			UseSummarizer: getBool(v, "NLP_USE_SUMMARIZER", false),
		},
		Scoring: ScoringConfig{
			ScorerURL:            getString(v, "SCORER_URL", "http://localhost:9500"),
			PrehireThreshold:     getFloat(v, "PREHIRE_THRESHOLD", 0.45),
			PerformanceThreshold: getFloat(v, "PERFORMANCE_THRESHOLD", 0.6),
			TimeoutSeconds:       getInt(v, "SCORER_TIMEOUT_SECONDS", 15),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(v.GetString(key), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
