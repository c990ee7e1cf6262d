// cmd/orgctl/main.go
//
// orgctl is the operator tool for the organizations backend: listing,
// publishing, unpublishing and soft-deleting organizations without going
// through the HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/openvolunteering/orghub/internal/config"
	"github.com/openvolunteering/orghub/internal/email"
	"github.com/openvolunteering/orghub/internal/repository"
	"github.com/openvolunteering/orghub/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	listOffset int
	listLimit  int
)

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Pagination offset")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "Page size")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(unpublishCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(unhighlightCmd)
	rootCmd.AddCommand(deleteCmd)
}

var rootCmd = &cobra.Command{
	Use:   "orgctl",
	Short: "orgctl manages organizations on the volunteering platform",
	Long:  `orgctl lists, publishes, unpublishes and soft-deletes organizations directly against the database.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations",
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		orgs, total, err := svc.List(context.Background(), listOffset, listLimit)
		if err != nil {
			log.Fatalf("Failed to list organizations: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSLUG\tNAME\tPUBLISHED\tDELETED\tHIGHLIGHTED")
		for _, org := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\n",
				org.ID, org.Slug, org.Name, org.Published, org.Deleted, org.Highlighted)
		}
		w.Flush()
		fmt.Printf("\n%d of %d organizations\n", len(orgs), total)
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish [id]",
	Short: "Publish an organization",
	Long:  `Publish an organization. The published date is stamped and the owner notified only on the first publish.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		org, err := svc.Publish(context.Background(), mustUUID(args[0]))
		if err != nil {
			log.Fatalf("Failed to publish organization: %v", err)
		}
		fmt.Printf("Published %s (%s)\n", org.Slug, org.ID)
	},
}

var unpublishCmd = &cobra.Command{
	Use:   "unpublish [id]",
	Short: "Unpublish an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		org, err := svc.Unpublish(context.Background(), mustUUID(args[0]))
		if err != nil {
			log.Fatalf("Failed to unpublish organization: %v", err)
		}
		fmt.Printf("Unpublished %s (%s)\n", org.Slug, org.ID)
	},
}

var highlightCmd = &cobra.Command{
	Use:   "highlight [id]",
	Short: "Highlight an organization",
	Long:  `Mark an organization as highlighted so it surfaces in curated listings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		org, err := svc.SetHighlighted(context.Background(), mustUUID(args[0]), true)
		if err != nil {
			log.Fatalf("Failed to highlight organization: %v", err)
		}
		fmt.Printf("Highlighted %s (%s)\n", org.Slug, org.ID)
	},
}

var unhighlightCmd = &cobra.Command{
	Use:   "unhighlight [id]",
	Short: "Remove the highlight from an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		org, err := svc.SetHighlighted(context.Background(), mustUUID(args[0]), false)
		if err != nil {
			log.Fatalf("Failed to unhighlight organization: %v", err)
		}
		fmt.Printf("Unhighlighted %s (%s)\n", org.Slug, org.ID)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Soft-delete an organization",
	Long:  `Soft-delete an organization. Deletion forces published=false and stamps the deleted date once; the record is never removed.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustService()
		org, err := svc.Delete(context.Background(), mustUUID(args[0]))
		if err != nil {
			log.Fatalf("Failed to delete organization: %v", err)
		}
		fmt.Printf("Deleted %s (%s)\n", org.Slug, org.ID)
	},
}

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		log.Fatalf("Invalid organization id %q: %v", s, err)
	}
	return id
}

// mustService wires an OrganizationService against the configured database.
// Notifications run synchronously; the operator sees delivery failures in the
// log output immediately.
func mustService() *service.OrganizationService {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider := email.ProviderSMTP
	if cfg.Sendgrid.APIKey != "" {
		provider = email.ProviderSendgrid
	}
	emailService, err := email.NewService(cfg, provider)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	dispatcher := email.NewDispatcher(emailService, logger, false, 0)
	mailer := email.NewOrganizationMailer(dispatcher)

	return service.NewOrganizationService(
		repository.NewOrganizationRepository(db),
		repository.NewUserRepository(db),
		mailer,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
