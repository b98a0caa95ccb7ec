package service

import (
	"os"

	"log/slog"
)

// Contact Logger
var (
	contactHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Contact Service")})
	contactLogger  = slog.New(contactHandler)
)

// Follow-Up Logger
var (
	followUpHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "FollowUp Service")})
	followUpLogger  = slog.New(followUpHandler)
)

// District Logger
var (
	districtHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "District Service")})
	districtLogger  = slog.New(districtHandler)
)

// Template Logger
var (
	templateHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Template Service")})
	templateLogger  = slog.New(templateHandler)
)

// School Logger
var (
	schoolHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "School Service")})
	schoolLogger  = slog.New(schoolHandler)
)
