package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Product 是目录文件中的一条商品记录。
// 除 Features 外的字段仅用于展示层，引擎不读取。
type Product struct {
	ID          string             `yaml:"id" json:"id"`
	Name        string             `yaml:"name" json:"name"`
	Price       float64            `yaml:"price" json:"price"`
	Brand       string             `yaml:"brand" json:"brand"`
	Description string             `yaml:"description" json:"description"`
	ImageURL    string             `yaml:"image_url" json:"image_url"`
	Features    map[string]float64 `yaml:"features" json:"features"`
}

// File 是目录文件的顶层结构。
type File struct {
	Products []Product `yaml:"products" json:"products"`
}

// LoadYAML 从 YAML 文件加载商品目录（启动时目录装载）。
// 返回完整的商品记录列表；特征注册仍通过 Catalog.Add 完成，
// 以便统一走 clamp 校验。
func LoadYAML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	return &f, nil
}

// Register 将文件中所有商品的特征注册到 Catalog，返回被 clamp 的特征总数。
func (f *File) Register(c *Catalog) int {
	clamped := 0
	for _, p := range f.Products {
		clamped += c.Add(p.ID, p.Features)
	}
	return clamped
}
