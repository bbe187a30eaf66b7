package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/typebureau/designer-catalog/internal/config"
	"github.com/typebureau/designer-catalog/internal/env"
	"github.com/typebureau/designer-catalog/internal/util"
	"github.com/typebureau/designer-catalog/pkg/catalog"
)

func init() {
	env.LoadEnv()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: add-designer [--spreadsheet file.xlsx] <designers_directory> <name> <img_path>")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	spreadsheet := flag.String("spreadsheet", "", "optional path to the designer spreadsheet (.xlsx)")
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	designersDir := flag.Arg(0)
	req := catalog.SyncRequest{
		Name:      flag.Arg(1),
		ImagePath: flag.Arg(2),
	}

	// Empty names are rejected here at the boundary; the catalog package
	// accepts whatever it is handed.
	validate := validator.New()
	if err := validate.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
		logger.Fatalf("failed to register validation: %v", err)
	}
	if err := validate.Struct(req); err != nil {
		logger.Fatalf("invalid arguments: %s", util.FirstErrorMessage(err, map[string]string{
			"Name":      "designer name",
			"ImagePath": "image path",
		}))
	}

	if *spreadsheet != "" {
		row, err := catalog.LookupDesigner(*spreadsheet, req.Name)
		if err != nil {
			logger.Fatalf("spreadsheet lookup for %q: %v", req.Name, err)
		}
		req.Bio = row.Bio
		req.URLs = catalog.ParseURLs(row.Link)
	}

	sync := catalog.NewSynchronizer(logger, cfg.Catalog.AvatarMaxSize)
	if err := sync.Sync(designersDir, req); err != nil {
		logger.Fatalf("failed to add designer %q: %v", req.Name, err)
	}
}
