package service

import (
	"context"
	"time"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/spreadsheet"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

// ExportService renders catalog collections and the monthly report as
// downloadable files. The spreadsheet column headers mirror the ones the
// importer accepts, so an export can be re-imported unchanged.
type ExportService interface {
	Collection(ctx context.Context, target string) ([]byte, string, error)
	MonthlyReport(ctx context.Context, month time.Time) ([]byte, error)
	MonthlyReportPDF(ctx context.Context, month time.Time) ([]byte, error)
}

type exportService struct {
	store *store.Store
}

func NewExportService(st *store.Store) ExportService {
	return &exportService{store: st}
}

const dateLayout = "2006-01-02 15:04"

// Collection exports one catalog collection as a single-sheet workbook,
// returning the file bytes and the suggested filename.
func (s *exportService) Collection(ctx context.Context, target string) ([]byte, string, error) {
	st := s.store.Current()

	var sheet spreadsheet.Sheet
	switch target {
	case TargetServices:
		sheet = servicesSheet(st)
	case TargetProducts:
		sheet = productsSheet(st)
	case TargetClients:
		sheet = clientsSheet(st)
	case TargetProviders:
		sheet = providersSheet(st)
	default:
		return nil, "", &ErrUnknownTarget{Target: target}
	}

	f, err := spreadsheet.BuildWorkbook(sheet)
	if err != nil {
		return nil, "", err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), target + ".xlsx", nil
}

// MonthlyReport builds the three-sheet workbook for the given month:
// finances, current inventory, and the month's movements.
func (s *exportService) MonthlyReport(ctx context.Context, month time.Time) ([]byte, error) {
	st := s.store.Current()

	f, err := spreadsheet.BuildWorkbook(
		financesSheet(st, month),
		inventorySheet(st),
		movementsSheet(st, month),
	)
	if err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) MonthlyReportPDF(ctx context.Context, month time.Time) ([]byte, error) {
	return infra.BuildMonthlySummaryPDF(s.store.Current(), month)
}

func sameMonth(t, month time.Time) bool {
	return t.Year() == month.Year() && t.Month() == month.Month()
}

func servicesSheet(st *model.AppState) spreadsheet.Sheet {
	rows := make([][]interface{}, 0, len(st.Services))
	for _, sv := range st.Services {
		rows = append(rows, []interface{}{
			sv.Code, sv.Name, sv.Category, sv.Price.InexactFloat64(), sv.Duration, string(sv.Status), sv.Notes,
		})
	}
	return spreadsheet.Sheet{
		Name:    "Servicios",
		Headers: []string{"Código", "Nombre", "Categoría", "Precio", "Duración", "Estado", "Notas"},
		Rows:    rows,
	}
}

func productsSheet(st *model.AppState) spreadsheet.Sheet {
	rows := make([][]interface{}, 0, len(st.Products))
	for _, p := range st.Products {
		item := st.Inventory[p.ID]
		rows = append(rows, []interface{}{
			p.SKU, p.Name, p.Brand, p.Category, p.Cost.InexactFloat64(), p.Price.InexactFloat64(),
			p.Provider, p.Unit, item.CurrentStock, item.MinStock, item.Location,
		})
	}
	return spreadsheet.Sheet{
		Name: "Productos",
		Headers: []string{
			"SKU", "Nombre", "Marca", "Categoría", "Costo", "Precio",
			"Proveedor", "Unidad", "Stock", "Stock Mínimo", "Ubicación",
		},
		Rows: rows,
	}
}

func clientsSheet(st *model.AppState) spreadsheet.Sheet {
	rows := make([][]interface{}, 0, len(st.Clients))
	for _, c := range st.Clients {
		rows = append(rows, []interface{}{c.Name, c.Phone, c.Email, c.Notes})
	}
	return spreadsheet.Sheet{
		Name:    "Clientes",
		Headers: []string{"Nombre", "Teléfono", "Correo", "Notas"},
		Rows:    rows,
	}
}

func providersSheet(st *model.AppState) spreadsheet.Sheet {
	rows := make([][]interface{}, 0, len(st.Providers))
	for _, p := range st.Providers {
		rows = append(rows, []interface{}{p.Name, p.Contact, p.Phone, p.Category, p.Notes})
	}
	return spreadsheet.Sheet{
		Name:    "Proveedores",
		Headers: []string{"Nombre", "Contacto", "Teléfono", "Categoría", "Notas"},
		Rows:    rows,
	}
}

func financesSheet(st *model.AppState, month time.Time) spreadsheet.Sheet {
	var rows [][]interface{}
	for _, t := range st.Transactions {
		if !sameMonth(t.Date, month) {
			continue
		}
		rows = append(rows, []interface{}{
			t.Date.Format(dateLayout), string(t.Type), t.Category, t.Description,
			t.Amount.InexactFloat64(), string(t.PaymentMethod), t.ClientName, t.Provider,
		})
	}
	return spreadsheet.Sheet{
		Name: "Finanzas",
		Headers: []string{
			"Fecha", "Tipo", "Categoría", "Descripción", "Monto", "Método de Pago", "Cliente", "Proveedor",
		},
		Rows: rows,
	}
}

func inventorySheet(st *model.AppState) spreadsheet.Sheet {
	var rows [][]interface{}
	for _, p := range st.Products {
		item, ok := st.Inventory[p.ID]
		if !ok {
			continue
		}
		estado := "OK"
		if item.LowStock() {
			estado = "Stock Bajo"
		}
		rows = append(rows, []interface{}{
			p.SKU, p.Name, item.CurrentStock, item.MinStock, item.Location, estado,
		})
	}
	return spreadsheet.Sheet{
		Name:    "Inventario Actual",
		Headers: []string{"SKU", "Producto", "Stock", "Stock Mínimo", "Ubicación", "Estado"},
		Rows:    rows,
	}
}

func movementsSheet(st *model.AppState, month time.Time) spreadsheet.Sheet {
	var rows [][]interface{}
	for _, m := range st.Movements {
		if !sameMonth(m.Date, month) {
			continue
		}
		name := m.ProductID
		if p := st.FindProduct(m.ProductID); p != nil {
			name = p.Name
		}
		rows = append(rows, []interface{}{
			m.Date.Format(dateLayout), name, string(m.Type), m.Quantity, m.Reason, m.Notes, m.User,
		})
	}
	return spreadsheet.Sheet{
		Name:    "Movimientos",
		Headers: []string{"Fecha", "Producto", "Tipo", "Cantidad", "Motivo", "Notas", "Usuario"},
		Rows:    rows,
	}
}
