// Package metricsfile lê o documento JSON de métricas do disco
package metricsfile

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recho-console/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Erros de carregamento do documento
var (
	ErrDocumentNotFound  = errors.New("metrics document not found")
	ErrMalformedDocument = errors.New("malformed metrics document")
)

// Loader carrega o documento de métricas de alguma origem
type Loader interface {
	Load(path string) (*domain.MetricsDocument, error)
}

// FileLoader lê o documento de um arquivo local
type FileLoader struct{}

// NewFileLoader cria o leitor de arquivos de métricas
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load abre o arquivo e decodifica o documento
func (l *FileLoader) Load(path string) (*domain.MetricsDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrDocumentNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "metricsfile: opening %s", path)
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Documento de métricas inválido")
		return nil, errors.WithMessage(err, path)
	}

	return doc, nil
}

// Decode lê um documento de métricas JSON. A raiz precisa ser um objeto.
func Decode(r io.Reader) (*domain.MetricsDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "metricsfile: reading document")
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "%v", err)
	}
	if root == nil {
		return nil, errors.Wrap(ErrMalformedDocument, "document root is not an object")
	}

	return domain.NewMetricsDocument(root), nil
}
