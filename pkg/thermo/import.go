package thermo

import (
	"thermolog.xyz/temperature-analytics-service/pkg/ingest"
)

func (t *Thermo) importArchive(path string) (*ingest.ImportSummary, error) {
	importer := &ingest.Importer{Db: t.Db}
	return importer.ImportArchive(path)
}

type IImportImpl struct {
	thermo *Thermo
}

func (ii *IImportImpl) ImportArchive(path string) (*ingest.ImportSummary, error) {
	return ii.thermo.importArchive(path)
}

func (t *Thermo) GetIImport() IImport {
	return &IImportImpl{thermo: t}
}
