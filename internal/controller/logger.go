package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	contactHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "contactController")})
	followUpHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "followUpController")})
	districtHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "districtController")})
	templateHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "templateController")})
	schoolHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "schoolController")})
)

// loggers
var (
	contactLogger  = slog.New(contactHandler)
	followUpLogger = slog.New(followUpHandler)
	districtLogger = slog.New(districtHandler)
	templateLogger = slog.New(templateHandler)
	schoolLogger   = slog.New(schoolHandler)
)
