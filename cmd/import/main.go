package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/pcbuild-backend/config"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/repository"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/db"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/pkg/redis"
)

const additionalItemsTarget = "additional-items"

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 3 {
		log.Fatalf("Usage: go run cmd/import/main.go <category|%s> <csv_or_xlsx_file_path>", additionalItemsTarget)
	}

	target := os.Args[1]
	filePath := os.Args[2]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 파일 읽기
	fmt.Printf("Reading file: %s\n", filePath)
	table, err := readTable(filePath)
	if err != nil {
		log.Fatal("Failed to read file:", err)
	}

	// 저장소 연결
	repo, closeRepo, err := openStateRepository(cfg)
	if err != nil {
		log.Fatal("Failed to open state storage:", err)
	}
	defer closeRepo()

	ctx := context.Background()
	if strings.EqualFold(target, additionalItemsTarget) {
		importAdditionalItems(ctx, repo, table)
		return
	}

	cat, err := model.ParseCategory(target)
	if err != nil {
		log.Fatalf("Unknown category %q", target)
	}
	importComponents(ctx, repo, cat, table)
}

func readTable(filePath string) (*importer.Table, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return importer.Read(filePath, f)
}

func openStateRepository(cfg *config.Config) (repository.StateRepository, func(), error) {
	if cfg.State.Backend == config.StateBackendRedis {
		if err := redis.Init(&cfg.Redis); err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStateRepository(redis.GetClient(), cfg.State.KeyPrefix), func() { redis.Close() }, nil
	}

	if err := db.Initialize(cfg); err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return repository.NewStateRepository(db.GetDB()), func() { db.Close() }, nil
}

func importComponents(ctx context.Context, repo repository.StateRepository, cat model.Category, table *importer.Table) {
	components, err := importer.Components(cat, table)
	if err != nil {
		log.Fatal("Failed to convert rows:", err)
	}

	catalogService := service.NewCatalogService(ctx, repo)
	fmt.Printf("Category: %s (%s)\n", cat, cat.DisplayName())
	fmt.Printf("Current components: %d\n", len(catalogService.List(cat)))
	fmt.Printf("Components to import: %d (existing entries will be replaced)\n", len(components))

	if !confirm() {
		fmt.Println("Import cancelled.")
		return
	}

	if err := catalogService.ReplaceCategory(ctx, cat, components); err != nil {
		log.Fatal("Failed to replace category:", err)
	}

	// 저장 결과 확인
	stored := service.NewCatalogService(ctx, repo).List(cat)
	if len(stored) != len(components) {
		log.Fatalf("Stored %d components, expected %d", len(stored), len(components))
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total components imported: %d\n", len(components))
}

func importAdditionalItems(ctx context.Context, repo repository.StateRepository, table *importer.Table) {
	items := importer.AdditionalItems(table)

	itemService := service.NewAdditionalItemService(ctx, repo)
	before := len(itemService.List())
	fmt.Printf("Current additional items: %d\n", before)
	fmt.Printf("Additional items to append: %d\n", len(items))

	if !confirm() {
		fmt.Println("Import cancelled.")
		return
	}

	added, err := itemService.BulkAdd(ctx, items)
	if err != nil {
		log.Fatal("Failed to add items:", err)
	}

	// 저장 결과 확인
	stored := service.NewAdditionalItemService(ctx, repo).List()
	if len(stored) != before+len(added) {
		log.Fatalf("Stored %d items, expected %d", len(stored), before+len(added))
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total items imported: %d\n", len(added))
}

// 사용자 확인
func confirm() bool {
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var answer string
	fmt.Scanln(&answer)
	return answer == "yes" || answer == "y"
}
