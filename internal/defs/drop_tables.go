// internal/defs/drop_tables.go
package defs

// DropTables — таблицы выпадения по классу врага.
// Один взвешенный бросок на смерть, выпадает ровно один предмет.
var DropTables = map[EnemyClass][]DropEntry{
	EnemyBasic: {
		{Weight: 90, Kind: PickupXP, Amount: 1},
		{Weight: 1, Kind: PickupHealth, Amount: 10},
		{Weight: 2, Kind: PickupBomb, Amount: 1},
	},
	EnemyFast: {
		{Weight: 85, Kind: PickupXP, Amount: 2},
		{Weight: 2, Kind: PickupHealth, Amount: 15},
		{Weight: 1, Kind: PickupBomb, Amount: 1},
	},
	EnemyTank: {
		{Weight: 70, Kind: PickupXP, Amount: 3},
		{Weight: 5, Kind: PickupHealth, Amount: 25},
		{Weight: 2, Kind: PickupHealth, Amount: 50},
		{Weight: 1, Kind: PickupBomb, Amount: 1},
	},
	EnemyElite: {
		{Weight: 60, Kind: PickupXP, Amount: 5},
		{Weight: 10, Kind: PickupXP, Amount: 10},
		{Weight: 5, Kind: PickupHealth, Amount: 30},
		{Weight: 2, Kind: PickupHealth, Amount: 100},
		{Weight: 2, Kind: PickupBomb, Amount: 1},
	},
}

// DefaultDropTable — запасная таблица для неизвестного класса.
var DefaultDropTable = []DropEntry{
	{Weight: 90, Kind: PickupXP, Amount: 1},
	{Weight: 8, Kind: PickupHealth, Amount: 10},
	{Weight: 2, Kind: PickupBomb, Amount: 1},
}

// DropTableFor возвращает таблицу выпадения для класса врага.
func DropTableFor(class EnemyClass) []DropEntry {
	if table, ok := DropTables[class]; ok {
		return table
	}
	return DefaultDropTable
}
