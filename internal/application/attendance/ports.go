package attendance

import "github.com/jhoicas/smarthr-api/internal/domain/face"

// Extractor convierte la imagen cruda del kiosco en un embedding facial
// normalizado. La implementación OpenCV vive en infrastructure/vision.
//
// Errores esperados: domain.ErrBadImage si los bytes no decodifican,
// domain.ErrNoFace si ningún intento del plan de detección encuentra cara.
type Extractor interface {
	Extract(image []byte) (face.Embedding, error)
}

// ReportGenerator genera el PDF del reporte mensual de asistencia.
type ReportGenerator interface {
	MonthlyReport(data *MonthlyReportData) ([]byte, error)
}
