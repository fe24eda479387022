// Package seed holds the built-in initial state: the salon's standard service
// price list and a minimal product catalog. It is the fallback for every
// collection that is absent or unreadable in the persisted snapshot.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

type servicePreset struct {
	name     string
	category string
	price    int64
}

var servicePresets = []servicePreset{
	{"Lavado y secado Normal Corto", "Cabello", 650},
	{"Lavado y secado Normal Medio", "Cabello", 750},
	{"Lavado y secado Normal Largo", "Cabello", 850},
	{"Lavado y secado primiun Corto", "Cabello", 750},
	{"Lavado y secado primiun Medio", "Cabello", 900},
	{"Lavado y secado primiun Largo", "Cabello", 1200},
	{"Corte de puntas", "Cabello", 500},
	{"Corte y estilo completo", "Cabello", 800},
	{"Plancha o rizos", "Cabello", 350},
	{"Hidratación capilar", "Cabello", 1750},
	{"Tratamiento de keratina | Onza", "Cabello", 2800},
	{"Retoque de Color (raíz)", "Cabello", 2900},
	{"Tinte completo Corto", "Cabello", 3800},
	{"Tinte completo Medio", "Cabello", 4000},
	{"Tinte completo Largo", "Cabello", 4500},
	{"Mechas / Highlights | Desde", "Cabello", 5800},
	{"Botox capilar | Onza", "Cabello", 2900},
	{"Anti-Crespo | Onza", "Cabello", 2900},
	{"Cirugia Capilar | Onza", "Cabello", 2900},
	{"Manicura tradicional", "Manos y Pies", 500},
	{"Manicura con Gel", "Manos y Pies", 850},
	{"Pedicura tradicional", "Manos y Pies", 650},
	{"Pedicura con Gel", "Manos y Pies", 1200},
	{"Pintura de Mano Normal", "Manos y Pies", 300},
	{"Pintada en Gel", "Manos y Pies", 500},
	{"Pintura de Pies Normal", "Manos y Pies", 300},
	{"Pintura de Pies con Gel", "Manos y Pies", 500},
	{"Diseño de cejas", "Rostro", 300},
	{"Micro-Picmentacion", "Rostro", 6000},
	{"Cejas con henna", "Rostro", 600},
	{"Limpieza de cejas", "Rostro", 150},
	{"Extensiones de pestañas (clásicas)", "Rostro", 800},
	{"Depilacion Boso", "Cuidado Personal", 300},
	{"Depilacion Axilas", "Cuidado Personal", 400},
	{"Depilacion Piernas", "Cuidado Personal", 800},
}

// ServiceCategories and ProductCategories are the fixed category choices
// offered by the catalog forms.
var (
	ServiceCategories = []string{"Cabello", "Manos y Pies", "Rostro", "Cuidado Personal", "Otros"}
	ProductCategories = []string{"Shampoo", "Tinte", "Tratamiento", "Cuidado de Uñas", "Electrónicos", "Consumibles"}

	IncomeCategories  = []string{"Venta de Servicio", "Venta de Producto", "Otro"}
	ExpenseCategories = []string{"Alquiler", "Sueldos", "Servicios Públicos", "Suministros", "Impuestos", "Marketing", "Otro"}
)

// State builds a fresh seed snapshot. Timestamps are stamped at call time so
// a reset behaves like a first run.
func State() *model.AppState {
	now := time.Now()

	services := make([]model.Service, 0, len(servicePresets))
	for i, p := range servicePresets {
		services = append(services, model.Service{
			ID:        fmt.Sprintf("s-%d", i),
			Code:      fmt.Sprintf("S%03d", i+1),
			Name:      p.name,
			Category:  p.category,
			Price:     decimal.NewFromInt(p.price),
			Duration:  30,
			Status:    model.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return &model.AppState{
		Services: services,
		Products: []model.Product{
			{
				ID: "p1", SKU: "P001", Name: "Shampoo Reparador 500ml", Brand: "L'Oréal",
				Category: "Shampoo", Cost: decimal.NewFromFloat(12.0), Price: decimal.NewFromFloat(22.0),
				Provider: "Distribuidora Pro", Unit: "ml", Status: model.StatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "p2", SKU: "P002", Name: "Tinte 7.1 Rubio Ceniza", Brand: "Wella",
				Category: "Tinte", Cost: decimal.NewFromFloat(8.5), Price: decimal.Zero,
				Provider: "Beauty Supply", Unit: "unidad", Status: model.StatusActive,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		Clients:   []model.Client{},
		Providers: []model.Provider{},
		Inventory: map[string]model.InventoryItem{
			"p1": {ProductID: "p1", CurrentStock: 10, MinStock: 5, Location: "Estante A"},
			"p2": {ProductID: "p2", CurrentStock: 3, MinStock: 10, Location: "Estante B"},
		},
		Movements: []model.InventoryMovement{},
		Transactions: []model.Transaction{
			{
				ID: "t1", Date: now, Type: model.TransactionIncome, Category: "Venta de Servicio",
				Description: "Lavado y secado Normal Corto", Amount: decimal.NewFromInt(650),
				PaymentMethod: model.PaymentCash, CreatedAt: now, UpdatedAt: now,
			},
		},
		UserRole: model.RoleAdmin,
	}
}
