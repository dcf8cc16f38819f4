package mongodb

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}

// pickString devuelve el primer alias presente y no vacío del documento.
func pickString(doc bson.M, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			if s, ok := v.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// pickFloat devuelve el primer alias numérico presente.
func pickFloat(doc bson.M, keys ...string) float64 {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int32:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// toFloat32Slice convierte un array BSON numérico a []float32. Devuelve nil
// si el valor no es un array o contiene elementos no numéricos.
func toFloat32Slice(v any) []float32 {
	arr, ok := v.(primitive.A)
	if !ok {
		return nil
	}
	out := make([]float32, 0, len(arr))
	for _, el := range arr {
		switch n := el.(type) {
		case float64:
			out = append(out, float32(n))
		case float32:
			out = append(out, n)
		case int32:
			out = append(out, float32(n))
		case int64:
			out = append(out, float32(n))
		default:
			return nil
		}
	}
	return out
}

// pickTime devuelve el primer alias de fecha presente, en UTC. Tolera las
// dos representaciones que conviven en las colecciones.
func pickTime(doc bson.M, keys ...string) time.Time {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case primitive.DateTime:
			return v.Time().UTC()
		case time.Time:
			return v.UTC()
		}
	}
	return time.Time{}
}

// pickTimePtr variante con nil para campos de fecha opcionales.
func pickTimePtr(doc bson.M, keys ...string) *time.Time {
	t := pickTime(doc, keys...)
	if t.IsZero() {
		return nil
	}
	return &t
}
