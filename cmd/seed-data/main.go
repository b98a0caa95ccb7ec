package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/xEpiqq/hivecrm/internal/database"
	"github.com/xEpiqq/hivecrm/internal/mapper"
	"github.com/xEpiqq/hivecrm/internal/model"
	"github.com/xEpiqq/hivecrm/pkg/awssess"
)

var logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}).WithAttrs([]slog.Attr{slog.String("app", "seed-data")})
var logger = slog.New(logHandler)

var (
	districtStore *database.DistrictRepository
	schoolStore   *database.SchoolRepository
)

// districtSeed is one row of a scraped state district file.
type districtSeed struct {
	Name string `json:"name" validate:"required"`
	Link string `json:"link" validate:"required"`
	Site string `json:"site"`
}

// schoolSeed is one row of the private school export.
type schoolSeed struct {
	Id         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	City       string `json:"city"`
	State      string `json:"state" validate:"required,len=2"`
	Population int    `json:"population"`
}

func main() {

	districtFile := flag.String("districts", "", "json file with a state's districts")
	schoolFile := flag.String("schools", "", "json file with private schools")
	state := flag.String("state", "", "[required with -districts] state the districts belong to")
	flag.Parse()

	if *districtFile == "" && *schoolFile == "" {
		flag.PrintDefaults()
		return
	}

	if *districtFile != "" && *state == "" {
		log.Fatal("-state is required when importing districts")
	}

	cc := make(chan os.Signal, 1)
	signal.Notify(cc, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-cc
		fmt.Println("CANCELLED")
		cancel()
		os.Exit(1)
	}()

	if *districtFile != "" {
		if err := seedDistricts(ctx, *districtFile, *state); err != nil {
			log.Fatalf("district import failed error='%s'", err)
		}
	}

	if *schoolFile != "" {
		if err := seedSchools(ctx, *schoolFile); err != nil {
			log.Fatalf("school import failed error='%s'", err)
		}
	}
}

func seedDistricts(ctx context.Context, file, state string) error {
	d, err := os.Open(file)

	if err != nil {
		return fmt.Errorf("failed to open file error='%w'", err)
	}
	defer d.Close()

	var rows []districtSeed

	if err := json.NewDecoder(d).Decode(&rows); err != nil {
		return fmt.Errorf("failed to unmarshall error='%w'", err)
	}

	state = mapper.NormalizeState(state)
	validate := validator.New(validator.WithRequiredStructEnabled())

	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			for _, ve := range err.(validator.ValidationErrors) {
				fmt.Printf("%s validation: %s failed. value='%s', param='%s'\n", ve.Namespace(), ve.Tag(), ve.Value(), ve.Param())
			}
			return fmt.Errorf("row %d invalid", i)
		}

		item := model.DistrictItem{
			State: state,
			Link:  row.Link,
			Name:  row.Name,
			Site:  row.Site,
		}

		if item.Site == "" {
			item.Site = model.NoValidLink
		}

		if err := districtStore.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create district '%s' error='%w'", row.Name, err)
		}
		logger.Debug("district imported.", slog.String("state", state), slog.String("name", row.Name))
	}

	logger.Info("districts imported.", slog.String("state", state), slog.Int("count", len(rows)))
	return nil
}

func seedSchools(ctx context.Context, file string) error {
	d, err := os.Open(file)

	if err != nil {
		return fmt.Errorf("failed to open file error='%w'", err)
	}
	defer d.Close()

	var rows []schoolSeed

	if err := json.NewDecoder(d).Decode(&rows); err != nil {
		return fmt.Errorf("failed to unmarshall error='%w'", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			for _, ve := range err.(validator.ValidationErrors) {
				fmt.Printf("%s validation: %s failed. value='%s', param='%s'\n", ve.Namespace(), ve.Tag(), ve.Value(), ve.Param())
			}
			return fmt.Errorf("row %d invalid", i)
		}

		item := model.SchoolItem{
			Id:         row.Id,
			Name:       row.Name,
			City:       row.City,
			State:      row.State,
			Population: row.Population,
		}

		if err := schoolStore.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create school '%s' error='%w'", row.Name, err)
		}
		logger.Debug("school imported.", slog.String("name", row.Name))
	}

	logger.Info("schools imported.", slog.Int("count", len(rows)))
	return nil
}

func init() {
	if os.Getenv("STAGE") == "local" {

		fmt.Println("init local")
		err := godotenv.Load(".env", "./hivecrm/.env")
		if err != nil {
			log.Fatalf("Error loading env vars: %s", err)
		}
	}

	sess := awssess.MustGetSession()

	districtStore = database.NewDistrictRepo(sess)
	schoolStore = database.NewSchoolRepo(sess)
}
