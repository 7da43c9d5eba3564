package ioformats

import "github.com/railtopo/route18xx/catalog"

// LoadCatalog decodes the tile and train catalog documents and combines
// them into one validated catalog.Catalog (catalog.NewCatalog rejects a
// cyclic rust table at this point, per spec.md §7's "reported at load,
// not recoverable").
func LoadCatalog(tilesData, trainsData []byte) (*catalog.Catalog, error) {
	tiles, err := LoadTileCatalog(tilesData)
	if err != nil {
		return nil, err
	}
	trains, phases, err := LoadTrainCatalog(trainsData)
	if err != nil {
		return nil, err
	}
	return catalog.NewCatalog(phases, trains, tiles)
}
