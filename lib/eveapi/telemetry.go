package eveapi

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pew.lib.eveapi")
