package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"inspectra/internal/dto"
	"inspectra/internal/store"
	"inspectra/pkg/config"
	"inspectra/pkg/customvalidator"
	"inspectra/pkg/eventbus"
	"inspectra/pkg/idgen"
	applogger "inspectra/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	cfg := config.New()
	logger := applogger.NewLogger(cfg.App.LogLevel)
	defer logger.Sync()

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validation rules", zap.Error(err))
	}

	bus := eventbus.New(logger)
	for _, name := range []string{
		"unit.created", "unit.removed",
		"workshop.created", "workshop.removed",
		"extinguisher.created", "extinguisher.updated", "extinguisher.removed",
		"user.registered",
	} {
		bus.Subscribe(name, func(ctx context.Context, event eventbus.Event) error {
			logger.Debug("event", zap.String("name", event.Name()))
			return nil
		})
	}

	st := store.New(v, idgen.New(), bus, logger, time.Now)

	ctx := context.Background()
	if cfg.App.SeedDemo {
		if err := st.Seed(ctx); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	logger.Info("inspectra store ready, type 'help' for commands")
	runLoop(ctx, st, cfg)
}

// runLoop is the demo presentation layer: it reads commands from stdin,
// dispatches them into the store and prints the resulting snapshots.
func runLoop(ctx context.Context, st *store.Store, cfg *config.Config) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "exit", "quit":
			return

		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			printSession(st.Login(ctx, dto.LoginDTO{Email: fields[1], Password: fields[2]}))
		case "logout":
			printSession(st.Logout(ctx))
		case "register":
			if len(fields) < 4 {
				fmt.Println("usage: register <email> <password> <full name>")
				continue
			}
			printSession(st.Register(ctx, dto.RegisterDTO{
				Email:    fields[1],
				Password: fields[2],
				FullName: strings.Join(fields[3:], " "),
			}))
		case "whoami":
			printSession(st.Session(ctx))

		case "units":
			units, err := st.Units(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, u := range units {
				fmt.Printf("%s  %-20s %s\n", u.ID, u.Name, u.Location.String)
			}
		case "add-unit":
			if len(fields) < 2 {
				fmt.Println("usage: add-unit <name>")
				continue
			}
			unit, err := st.AddUnit(ctx, dto.CreateUnitDTO{Name: strings.Join(fields[1:], " ")})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("created", unit.ID)
		case "rm-unit":
			if len(fields) != 2 {
				fmt.Println("usage: rm-unit <id>")
				continue
			}
			if err := st.RemoveUnit(ctx, fields[1]); err != nil {
				fmt.Println("error:", err)
			}

		case "workshops":
			if len(fields) < 2 {
				fmt.Println("usage: workshops <unit-id> [query]")
				continue
			}
			workshops, err := st.Workshops(ctx, fields[1], strings.Join(fields[2:], " "))
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, w := range workshops {
				fmt.Printf("%s  %-20s %s\n", w.ID, w.Name, w.Location.String)
			}
		case "add-workshop":
			if len(fields) < 3 {
				fmt.Println("usage: add-workshop <unit-id> <name>")
				continue
			}
			workshop, err := st.AddWorkshop(ctx, dto.CreateWorkshopDTO{
				UnitID: fields[1],
				Name:   strings.Join(fields[2:], " "),
			})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("created", workshop.ID)

		case "extinguishers":
			if len(fields) < 2 {
				fmt.Println("usage: extinguishers <workshop-id> [query]")
				continue
			}
			items, err := st.Extinguishers(ctx, fields[1], strings.Join(fields[2:], " "))
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, e := range items {
				fmt.Printf("%s  %-10s %-13s next: %s\n", e.ID, e.Code, e.Status, e.NextInspection.String)
			}
		case "add-ext":
			if len(fields) < 3 {
				fmt.Println("usage: add-ext <workshop-id> <code> [next-inspection]")
				continue
			}
			payload := dto.CreateExtinguisherDTO{WorkshopID: fields[1], Code: fields[2]}
			if len(fields) > 3 {
				payload.NextInspection = null.StringFrom(fields[3])
			}
			item, err := st.AddExtinguisher(ctx, payload)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("created %s status %s\n", item.ID, item.Status)
		case "rm-ext":
			if len(fields) != 2 {
				fmt.Println("usage: rm-ext <id>")
				continue
			}
			if err := st.RemoveExtinguisher(ctx, fields[1]); err != nil {
				fmt.Println("error:", err)
			}

		case "dashboard":
			d, err := st.Dashboard(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("units: %d  workshops: %d  extinguishers: %d  due soon: %d\n",
				d.TotalUnits, d.TotalWorkshops, d.TotalExtinguishers, d.DueSoon)
		case "notifications":
			items, err := st.Notifications(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, n := range items {
				fmt.Printf("%-10s %s • %s  %s (%dd)\n", n.Code, n.UnitName, n.WorkshopName, n.When, n.DiffDays)
			}
		case "export":
			path := filepath.Join(cfg.App.ReportDir, fmt.Sprintf("register_%s.xlsx", time.Now().Format("2006-01-02")))
			if len(fields) > 1 {
				path = fields[1]
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := st.ExportRegister(ctx, path); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("written", path)

		default:
			fmt.Println("unknown command, type 'help'")
		}
	}
}

func printSession(session dto.SessionDTO) {
	if session.Error.Valid {
		fmt.Println("error:", session.Error.String)
		return
	}
	if !session.IsAuthenticated {
		fmt.Println("anonymous")
		return
	}
	fmt.Printf("authenticated as %s (%s)\n", session.CurrentUser.FullName, session.CurrentUser.Email)
}

func printHelp() {
	fmt.Println(`commands:
  login <email> <password>            logout            whoami
  register <email> <password> <name>
  units                               add-unit <name>   rm-unit <id>
  workshops <unit-id> [query]         add-workshop <unit-id> <name>
  extinguishers <workshop-id> [query] add-ext <workshop-id> <code> [date]
  rm-ext <id>                         dashboard         notifications
  export [path]                       exit`)
}
