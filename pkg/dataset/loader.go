package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/marshallshelly/northwind-samples/pkg/model"
	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a dataset file.
type document struct {
	Customers []model.Customer `yaml:"customers"`
	Suppliers []model.Supplier `yaml:"suppliers"`
	Products  []model.Product  `yaml:"products"`
}

// Parse decodes a YAML document and validates every entity.
func Parse(data []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	ds := &Dataset{
		customers: doc.Customers,
		suppliers: doc.Suppliers,
		products:  doc.Products,
	}
	if err := model.Validate(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

// LoadFromPath reads a dataset from a YAML file or a directory.
// Supports:
// - Single .yaml / .yml file
// - Directory (every .yaml / .yml file, recursively, in lexical path order;
//   collections are concatenated in that order)
func LoadFromPath(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var filesToParse []string

	if info.IsDir() {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isYAML(d.Name()) {
				filesToParse = append(filesToParse, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory: %w", err)
		}
		slices.Sort(filesToParse)
	} else {
		if !isYAML(path) {
			return nil, fmt.Errorf("file must have .yaml or .yml extension")
		}
		filesToParse = append(filesToParse, path)
	}

	if len(filesToParse) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %s", path)
	}

	var merged document
	for _, file := range filesToParse {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}

		merged.Customers = append(merged.Customers, doc.Customers...)
		merged.Suppliers = append(merged.Suppliers, doc.Suppliers...)
		merged.Products = append(merged.Products, doc.Products...)
	}

	ds := &Dataset{
		customers: merged.Customers,
		suppliers: merged.Suppliers,
		products:  merged.Products,
	}
	if err := model.Validate(ds); err != nil {
		return nil, fmt.Errorf("invalid dataset at %s: %w", path, err)
	}

	return ds, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
