package entity

import "github.com/shopspring/decimal"

// materialPrices tarifa por unidad (EGP) de cada material que trabaja el laboratorio.
var materialPrices = map[string]int64{
	"Monolithic Zirconia":            1250,
	"Layered Zirconia":               1500,
	"E-Max Crown":                    1800,
	"PFM (Porcelain Fused to Metal)": 800,
	"Full Metal Crown":               600,
	"Temporary PMMA":                 300,
	"Implant Crown":                  2000,
	"Veneer":                         2500,
}

// MaterialUnitPrice devuelve el precio unitario del material, o cero si no está tarifado.
func MaterialUnitPrice(material string) decimal.Decimal {
	if p, ok := materialPrices[material]; ok {
		return decimal.NewFromInt(p)
	}
	return decimal.Zero
}

// DerivePrice calcula el precio del caso: tarifa_unitaria(material) × unidades.
// Un precio sobrescrito manualmente se conserva hasta que material o unidades cambien.
func DerivePrice(material string, units int) decimal.Decimal {
	return MaterialUnitPrice(material).Mul(decimal.NewFromInt(int64(units)))
}

// Materials lista los materiales tarifados (orden no garantizado).
func Materials() []string {
	out := make([]string, 0, len(materialPrices))
	for m := range materialPrices {
		out = append(out, m)
	}
	return out
}
