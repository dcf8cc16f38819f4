package vision

import (
	"image"
	"sync"

	"gocv.io/x/gocv"

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain"
	"github.com/jhoicas/smarthr-api/internal/domain/face"
)

// Extractor implementa el puerto de extracción de embeddings sobre OpenCV.
// Los modelos de OpenCV no son thread-safe, así que las extracciones se
// serializan; el costo domina de todas formas el tiempo del request.
type Extractor struct {
	mu     sync.Mutex
	models *Models
}

var _ appattendance.Extractor = (*Extractor)(nil)

// NewExtractor construye el extractor sobre modelos ya cargados.
func NewExtractor(models *Models) *Extractor {
	return &Extractor{models: models}
}

// Extract decodifica la imagen, recorre el plan de intentos hasta que el
// detector encuentre una cara, y devuelve el embedding SFace de la cara más
// grande. El embedding sale crudo; el llamador normaliza.
func (e *Extractor) Extract(imageBytes []byte) (face.Embedding, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	img, err := gocv.IMDecode(imageBytes, gocv.IMReadColor)
	if err != nil || img.Empty() {
		if err == nil {
			img.Close()
		}
		return nil, domain.ErrBadImage
	}
	defer img.Close()

	for _, att := range attemptPlan(img.Cols(), img.Rows()) {
		variant, owned := e.applyAttempt(img, att)

		embedding, found := e.extractFrom(variant)
		if owned {
			variant.Close()
		}
		if found {
			return embedding, nil
		}
	}
	return nil, domain.ErrNoFace
}

// applyAttempt materializa la variante del plan. owned indica si el Mat
// devuelto es una copia que el llamador debe cerrar.
func (e *Extractor) applyAttempt(img gocv.Mat, att attempt) (gocv.Mat, bool) {
	switch {
	case att.width > 0:
		dst := gocv.NewMat()
		interp := gocv.InterpolationCubic
		if att.tag == "down" {
			interp = gocv.InterpolationArea
		}
		gocv.Resize(img, &dst, image.Pt(att.width, att.height), 0, 0, interp)
		return dst, true
	case att.rotation == rotCW:
		dst := gocv.NewMat()
		gocv.Rotate(img, &dst, gocv.Rotate90Clockwise)
		return dst, true
	case att.rotation == rotCCW:
		dst := gocv.NewMat()
		gocv.Rotate(img, &dst, gocv.Rotate90CounterClockwise)
		return dst, true
	default:
		return img, false
	}
}

// extractFrom detecta caras en la variante y calcula el embedding de la más
// grande. found=false si no hay caras.
func (e *Extractor) extractFrom(img gocv.Mat) (face.Embedding, bool) {
	e.models.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()
	e.models.detector.Detect(img, &faces)
	if faces.Rows() == 0 {
		return nil, false
	}

	// Cada fila es una detección; cols 2 y 3 son ancho y alto del box.
	best := 0
	bestArea := float32(0)
	for i := 0; i < faces.Rows(); i++ {
		area := faces.GetFloatAt(i, 2) * faces.GetFloatAt(i, 3)
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	faceRow := faces.RowRange(best, best+1)
	defer faceRow.Close()

	aligned := gocv.NewMat()
	defer aligned.Close()
	e.models.recognizer.AlignCrop(img, faceRow, &aligned)
	if aligned.Empty() {
		return nil, false
	}

	featMat := gocv.NewMat()
	defer featMat.Close()
	e.models.recognizer.Feature(aligned, &featMat)

	data, err := featMat.DataPtrFloat32()
	if err != nil || len(data) != face.EmbeddingDim {
		return nil, false
	}
	embedding := make(face.Embedding, face.EmbeddingDim)
	copy(embedding, data)
	return embedding, true
}
