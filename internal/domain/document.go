// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strings"
	"time"
)

// Caminhos das seções do documento de métricas
const (
	SectionAccountsComparison   = "accounts.comparison"
	SectionTrafficOrganicVsPaid = "traffic.organic_vs_paid"
	SectionTrafficBySubreddit   = "traffic.by_subreddit"
	SectionPaidCampaignSummary  = "paid.campaign_summary"
	SectionPaidDailyMetrics     = "paid.daily_metrics"
	SectionPaidSubreddits       = "paid.subreddit_performance"
	SectionOrganicSubreddits    = "organic.subreddit_performance"
	SectionOrganicDailyMetrics  = "organic.daily_metrics"
	SectionOrganicKarmaVelocity = "organic.karma_velocity"
	SectionOrganicTopPosts      = "organic.top_posts"
	SectionBrandBySubreddit     = "brand.by_subreddit"
	SectionBrandSentiment       = "brand.sentiment_distribution"
	SectionBrandMentionTrend    = "brand.mention_trend"
	FieldBrandSentimentRatio    = "brand.sentiment_ratio"
)

// KnownSections lista as seções de registros conhecidas, na ordem usada pelo status do documento
var KnownSections = []string{
	SectionAccountsComparison,
	SectionTrafficOrganicVsPaid,
	SectionTrafficBySubreddit,
	SectionPaidCampaignSummary,
	SectionPaidDailyMetrics,
	SectionPaidSubreddits,
	SectionOrganicSubreddits,
	SectionOrganicDailyMetrics,
	SectionOrganicKarmaVelocity,
	SectionOrganicTopPosts,
	SectionBrandBySubreddit,
	SectionBrandSentiment,
	SectionBrandMentionTrend,
}

// Record é um registro plano do documento (nome do campo -> número ou texto)
type Record map[string]any

// MetricsDocument é o documento JSON de métricas já decodificado.
// Nunca é alterado depois de carregado.
type MetricsDocument struct {
	root map[string]any
}

// NewMetricsDocument envolve o objeto raiz decodificado do JSON
func NewMetricsDocument(root map[string]any) *MetricsDocument {
	if root == nil {
		root = map[string]any{}
	}
	return &MetricsDocument{root: root}
}

// lookup percorre o caminho pontuado ("paid.campaign_summary") a partir da raiz
func (d *MetricsDocument) lookup(path string) (any, bool) {
	if d == nil {
		return nil, false
	}

	var current any = d.root
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// DecodeSection lê a seção e converte os registros com o decodificador informado
func DecodeSection[T any](d *MetricsDocument, section string, decode func([]Record) ([]T, error)) ([]T, error) {
	records, err := d.Section(section)
	if err != nil {
		return nil, err
	}
	return decode(records)
}

// Section retorna os registros de uma seção. Seção ausente ou que não seja
// uma sequência de objetos resulta em ErrInvalidShape.
func (d *MetricsDocument) Section(path string) ([]Record, error) {
	raw, ok := d.lookup(path)
	if !ok {
		return nil, NewShapeError(path, "", "section not present")
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, NewShapeError(path, "", "section is not a sequence of records")
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, NewShapeErrorAt(path, "", i, "item is not a record")
		}
		records = append(records, Record(obj))
	}
	return records, nil
}

// SectionLen retorna o número de registros da seção, ou -1 se ela não existir
func (d *MetricsDocument) SectionLen(path string) int {
	raw, ok := d.lookup(path)
	if !ok {
		return -1
	}
	items, ok := raw.([]any)
	if !ok {
		return -1
	}
	return len(items)
}

// Scalar retorna um campo numérico escalar do documento (ex.: brand.sentiment_ratio)
func (d *MetricsDocument) Scalar(path string) (float64, error) {
	raw, ok := d.lookup(path)
	if !ok || raw == nil {
		idx := strings.LastIndex(path, ".")
		return 0, NewMissingFieldError(path[:max(idx, 0)], path[idx+1:], -1)
	}

	value, ok := raw.(float64)
	if !ok || math.IsNaN(value) || value < 0 {
		return 0, NewShapeError(path, "", "scalar is not a non-negative number")
	}
	return value, nil
}

// Number lê um campo numérico obrigatório e não negativo do registro
func (r Record) Number(section string, index int, field string) (float64, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return 0, NewMissingFieldError(section, field, index)
	}

	value, ok := raw.(float64)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, NewShapeErrorAt(section, field, index, "field is not a number")
	}
	if value < 0 {
		return 0, NewShapeErrorAt(section, field, index, "field is negative")
	}
	return value, nil
}

// maxExactInt é o maior inteiro que um float64 representa sem perda (2^53)
const maxExactInt = 1 << 53

// Int lê um campo inteiro obrigatório e não negativo do registro
func (r Record) Int(section string, index int, field string) (int, error) {
	value, err := r.Number(section, index, field)
	if err != nil {
		return 0, err
	}
	if value != math.Trunc(value) {
		return 0, NewShapeErrorAt(section, field, index, "field is not an integer")
	}
	if value > maxExactInt {
		return 0, NewShapeErrorAt(section, field, index, "field out of range")
	}
	return int(value), nil
}

// OptionalNumber lê um campo numérico opcional. O segundo retorno indica se o campo existe.
func (r Record) OptionalNumber(section string, index int, field string) (float64, bool, error) {
	if raw, ok := r[field]; !ok || raw == nil {
		return 0, false, nil
	}
	value, err := r.Number(section, index, field)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// String lê um campo texto obrigatório do registro
func (r Record) String(section string, index int, field string) (string, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return "", NewMissingFieldError(section, field, index)
	}

	value, ok := raw.(string)
	if !ok {
		return "", NewShapeErrorAt(section, field, index, "field is not a string")
	}
	return value, nil
}

// Date lê um campo de data no formato YYYY-MM-DD
func (r Record) Date(section string, index int, field string) (time.Time, error) {
	value, err := r.String(section, index, field)
	if err != nil {
		return time.Time{}, err
	}

	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, NewShapeErrorAt(section, field, index, "field is not a YYYY-MM-DD date")
	}
	return date, nil
}

// Snapshot é uma versão carregada e imutável do documento
type Snapshot struct {
	ID       string           `json:"id"`
	Path     string           `json:"path"`
	LoadedAt time.Time        `json:"loaded_at"`
	Document *MetricsDocument `json:"-"`
}

// SnapshotInfo descreve a versão atual do documento para o endpoint de status
type SnapshotInfo struct {
	ID       string         `json:"id"`
	Path     string         `json:"path"`
	LoadedAt time.Time      `json:"loaded_at"`
	Sections map[string]int `json:"sections"` // -1 quando a seção não existe
}

// Info monta o resumo da versão, com a contagem de registros por seção
func (s *Snapshot) Info() *SnapshotInfo {
	sections := make(map[string]int, len(KnownSections))
	for _, section := range KnownSections {
		sections[section] = s.Document.SectionLen(section)
	}

	return &SnapshotInfo{
		ID:       s.ID,
		Path:     s.Path,
		LoadedAt: s.LoadedAt,
		Sections: sections,
	}
}
