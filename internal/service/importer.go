package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/dto"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/ledger"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/spreadsheet"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

// Import targets accepted by ImportService.Run.
const (
	TargetServices  = "services"
	TargetProducts  = "products"
	TargetClients   = "clients"
	TargetProviders = "providers"
)

// ErrUnknownTarget rejects an import against a collection that has no
// resolver.
type ErrUnknownTarget struct{ Target string }

func (e *ErrUnknownTarget) Error() string {
	return fmt.Sprintf("colección de importación desconocida: %q", e.Target)
}

// ImportService loads spreadsheet rows into a catalog collection. Matching is
// by natural key (product sku, service code, client phone, provider name,
// with name as fallback where the key is optional): a match updates the
// existing entity in place, keeping its id, createdAt and list position;
// anything else is appended. Rows missing required fields are skipped and
// reported, never aborting the batch. Rows are applied strictly in sheet
// order, so a later row may update an earlier row's freshly created entity.
type ImportService interface {
	Run(ctx context.Context, target string, sheet io.Reader) (*dto.ImportReport, error)
}

type importService struct {
	store *store.Store
}

func NewImportService(st *store.Store) ImportService {
	return &importService{store: st}
}

func (s *importService) Run(ctx context.Context, target string, sheet io.Reader) (*dto.ImportReport, error) {
	rows, err := spreadsheet.ReadRows(sheet)
	if err != nil {
		return nil, err
	}

	report := &dto.ImportReport{Target: target, Rows: len(rows)}
	var apply func(st *model.AppState, row spreadsheet.Row) (bool, error)
	switch target {
	case TargetServices:
		apply = s.applyService
	case TargetProducts:
		apply = s.applyProduct
	case TargetClients:
		apply = s.applyClient
	case TargetProviders:
		apply = s.applyProvider
	default:
		return nil, &ErrUnknownTarget{Target: target}
	}

	err = s.store.Mutate(ctx, func(st *model.AppState) error {
		for i, row := range rows {
			created, err := apply(st, row)
			if err != nil {
				report.Skipped++
				report.Errors = append(report.Errors, dto.ImportRowError{Row: i + 1, Reason: err.Error()})
				continue
			}
			if created {
				report.Created++
			} else {
				report.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.Processed = report.Created + report.Updated
	return report, nil
}

// field returns the first non-empty cell among the given header aliases,
// matched case-insensitively.
func field(row spreadsheet.Row, aliases ...string) string {
	for _, alias := range aliases {
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), alias) && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

func parseMoney(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (s *importService) applyService(st *model.AppState, row spreadsheet.Row) (bool, error) {
	name := field(row, "name", "nombre", "servicio")
	if name == "" {
		return false, fmt.Errorf("falta el nombre del servicio")
	}
	code := field(row, "code", "código", "codigo")

	duration := cast.ToInt(field(row, "duration", "duración", "duracion"))
	if duration <= 0 {
		duration = 30
	}
	category := field(row, "category", "categoría", "categoria")
	if category == "" {
		category = "Otros"
	}
	price := parseMoney(field(row, "price", "precio"))
	notes := field(row, "notes", "notas")

	for i := range st.Services {
		if (code != "" && st.Services[i].Code == code) || st.Services[i].Name == name {
			sv := &st.Services[i]
			sv.CreatedAt, sv.UpdatedAt = stamp(&sv.CreatedAt)
			if code != "" {
				sv.Code = code
			}
			sv.Name = name
			sv.Category = category
			sv.Price = price
			sv.Duration = duration
			if notes != "" {
				sv.Notes = notes
			}
			return false, nil
		}
	}

	createdAt, updatedAt := stamp(nil)
	if code == "" {
		code = fmt.Sprintf("S%03d", len(st.Services)+1)
	}
	st.Services = append(st.Services, model.Service{
		ID:        newID(),
		Code:      code,
		Name:      name,
		Category:  category,
		Price:     price,
		Duration:  duration,
		Status:    model.StatusActive,
		Notes:     notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})
	return true, nil
}

func (s *importService) applyProduct(st *model.AppState, row spreadsheet.Row) (bool, error) {
	name := field(row, "name", "nombre", "producto")
	if name == "" {
		return false, fmt.Errorf("falta el nombre del producto")
	}
	sku := field(row, "sku", "código", "codigo")

	category := field(row, "category", "categoría", "categoria")
	if category == "" {
		category = "Otros"
	}
	unit := field(row, "unit", "unidad")
	if unit == "" {
		unit = "unid"
	}
	provider := field(row, "provider", "proveedor")
	if provider == "" {
		provider = "General"
	}
	brand := field(row, "brand", "marca")
	cost := parseMoney(field(row, "cost", "costo"))
	price := parseMoney(field(row, "price", "precio"))

	for i := range st.Products {
		if (sku != "" && st.Products[i].SKU == sku) || st.Products[i].Name == name {
			p := &st.Products[i]
			p.CreatedAt, p.UpdatedAt = stamp(&p.CreatedAt)
			if sku != "" {
				p.SKU = sku
			}
			p.Name = name
			p.Brand = brand
			p.Category = category
			p.Cost = cost
			p.Price = price
			p.Provider = provider
			p.Unit = unit
			// stock columns on a matched row never touch the ledger
			return false, nil
		}
	}

	createdAt, updatedAt := stamp(nil)
	if sku == "" {
		sku = fmt.Sprintf("P%03d", len(st.Products)+1)
	}
	p := model.Product{
		ID:        newID(),
		SKU:       sku,
		Name:      name,
		Brand:     brand,
		Category:  category,
		Cost:      cost,
		Price:     price,
		Provider:  provider,
		Unit:      unit,
		Status:    model.StatusActive,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	st.Products = append(st.Products, p)

	stock := cast.ToInt(field(row, "stock", "existencia", "existencias"))
	minStock := cast.ToInt(field(row, "minStock", "stock mínimo", "stock minimo", "mínimo", "minimo"))
	location := field(row, "location", "ubicación", "ubicacion")
	ledger.EnsureTracked(st, p.ID, stock, minStock, location)
	return true, nil
}

func (s *importService) applyClient(st *model.AppState, row spreadsheet.Row) (bool, error) {
	name := field(row, "name", "nombre", "cliente")
	phone := field(row, "phone", "teléfono", "telefono", "tel")
	if name == "" || phone == "" {
		return false, fmt.Errorf("faltan nombre o teléfono del cliente")
	}
	email := field(row, "email", "correo")
	notes := field(row, "notes", "notas")

	for i := range st.Clients {
		if st.Clients[i].Phone == phone {
			c := &st.Clients[i]
			c.CreatedAt, c.UpdatedAt = stamp(&c.CreatedAt)
			c.Name = name
			if email != "" {
				c.Email = email
			}
			if notes != "" {
				c.Notes = notes
			}
			return false, nil
		}
	}

	createdAt, updatedAt := stamp(nil)
	st.Clients = append(st.Clients, model.Client{
		ID:        newID(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Notes:     notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})
	return true, nil
}

func (s *importService) applyProvider(st *model.AppState, row spreadsheet.Row) (bool, error) {
	name := field(row, "name", "nombre", "proveedor")
	if name == "" {
		return false, fmt.Errorf("falta el nombre del proveedor")
	}
	contact := field(row, "contact", "contacto")
	phone := field(row, "phone", "teléfono", "telefono", "tel")
	category := field(row, "category", "categoría", "categoria")
	notes := field(row, "notes", "notas")

	for i := range st.Providers {
		if st.Providers[i].Name == name {
			p := &st.Providers[i]
			p.CreatedAt, p.UpdatedAt = stamp(&p.CreatedAt)
			if contact != "" {
				p.Contact = contact
			}
			if phone != "" {
				p.Phone = phone
			}
			if category != "" {
				p.Category = category
			}
			if notes != "" {
				p.Notes = notes
			}
			return false, nil
		}
	}

	createdAt, updatedAt := stamp(nil)
	st.Providers = append(st.Providers, model.Provider{
		ID:        newID(),
		Name:      name,
		Contact:   contact,
		Phone:     phone,
		Category:  category,
		Notes:     notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	})
	return true, nil
}
