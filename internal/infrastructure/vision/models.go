package vision

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// Parámetros de YuNet. El umbral de score se mantiene tolerante; el filtro
// fino lo hace el umbral de similitud del matcher, no el detector.
const (
	detectorScoreThreshold = 0.6
	detectorNMSThreshold   = 0.3
	detectorTopK           = 5000
)

// Models detector YuNet + reconocedor SFace cargados desde sus ONNX. No es
// seguro para uso concurrente; Extractor serializa el acceso.
type Models struct {
	detector   gocv.FaceDetectorYN
	recognizer gocv.FaceRecognizerSF
}

// LoadModels carga ambos modelos. Los archivos son parte del despliegue:
// si faltan, el servicio no puede operar y el arranque debe abortar.
func LoadModels(yunetPath, sfacePath string) (*Models, error) {
	if _, err := os.Stat(yunetPath); err != nil {
		return nil, fmt.Errorf("modelo YuNet no encontrado en %s: %w", yunetPath, err)
	}
	if _, err := os.Stat(sfacePath); err != nil {
		return nil, fmt.Errorf("modelo SFace no encontrado en %s: %w", sfacePath, err)
	}

	detector := gocv.NewFaceDetectorYNWithParams(
		yunetPath, "", image.Pt(320, 320),
		detectorScoreThreshold, detectorNMSThreshold, detectorTopK,
		gocv.NetBackendDefault, gocv.NetTargetCPU,
	)
	recognizer := gocv.NewFaceRecognizerSF(sfacePath, "")

	return &Models{detector: detector, recognizer: recognizer}, nil
}

// Close libera los recursos nativos de OpenCV.
func (m *Models) Close() {
	m.detector.Close()
	m.recognizer.Close()
}
