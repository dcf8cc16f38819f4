// Package vision implementa el extractor de embeddings faciales sobre
// OpenCV: YuNet para detección y SFace para el embedding.
package vision

// Rotaciones del plan de intentos.
const (
	rotNone = iota
	rotCW
	rotCCW
)

// Umbrales del plan de reescalado. Imágenes chicas se suben para que YuNet
// tenga suficiente resolución; las enormes se bajan para no pagar detección
// sobre megapíxeles innecesarios.
const (
	upscaleBelow    = 480
	upscaleTarget   = 640.0
	downscaleAbove  = 1600
	downscaleTarget = 1200.0
)

// attempt una variante de la imagen a probar con el detector, en orden.
type attempt struct {
	tag      string
	width    int // 0 = dimensiones originales
	height   int
	rotation int
}

// attemptPlan devuelve las variantes a intentar para una imagen w×h:
// original, reescalada (si las dimensiones lo ameritan) y las dos
// rotaciones de 90 grados. La primera variante donde el detector encuentre
// una cara gana.
func attemptPlan(w, h int) []attempt {
	plan := []attempt{{tag: "orig"}}

	minSide, maxSide := w, h
	if h < w {
		minSide, maxSide = h, w
	}
	if minSide < upscaleBelow {
		sf := upscaleTarget / float64(minSide)
		plan = append(plan, attempt{
			tag:    "up",
			width:  int(float64(w) * sf),
			height: int(float64(h) * sf),
		})
	}
	if maxSide > downscaleAbove {
		sf := downscaleTarget / float64(maxSide)
		plan = append(plan, attempt{
			tag:    "down",
			width:  int(float64(w) * sf),
			height: int(float64(h) * sf),
		})
	}
	plan = append(plan,
		attempt{tag: "rot90", rotation: rotCW},
		attempt{tag: "rot270", rotation: rotCCW},
	)
	return plan
}
