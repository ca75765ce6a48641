package reporting

import (
	"boutique/internal/reporting/controller"

	"go.uber.org/zap"
)

func NewModule(orders controller.OrderSource, logger *zap.Logger) *controller.ReportingController {
	return controller.NewReportingController(orders, logger)
}
