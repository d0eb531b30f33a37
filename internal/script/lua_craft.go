package script

import (
	"github.com/Shopify/go-lua"
)

var craftMethods = []lua.RegistryFunction{
	{Name: "cancel", Function: craftCancel},
	{Name: "canceled", Function: craftCanceled},
	{Name: "results", Function: craftResults},
	{Name: "materials", Function: craftMaterials},
	{Name: "set_result_quantity", Function: craftSetResultQuantity},
	{Name: "remove_result", Function: craftRemoveResult},
	{Name: "set_result_field", Function: craftSetResultField},
	{Name: "set_material_quantity", Function: craftSetMaterialQuantity},
}

func registerCraftType(state *lua.State) {
	lua.NewMetaTable(state, craftTypeName)
	state.NewTable()
	lua.SetFunctions(state, craftMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func checkCraft(state *lua.State) Craft {
	ud := lua.CheckUserData(state, 1, craftTypeName)
	if c, ok := ud.(Craft); ok && c != nil {
		return c
	}
	lua.ArgumentError(state, 1, "craft expected")
	return nil
}

func craftCancel(state *lua.State) int {
	checkCraft(state).Cancel()
	return 0
}

func craftCanceled(state *lua.State) int {
	state.PushBoolean(checkCraft(state).Canceled())
	return 1
}

func craftResults(state *lua.State) int {
	pushEntries(state, checkCraft(state).Results())
	return 1
}

func craftMaterials(state *lua.State) int {
	pushEntries(state, checkCraft(state).Materials())
	return 1
}

func craftSetResultQuantity(state *lua.State) int {
	c := checkCraft(state)
	uuid := lua.CheckString(state, 2)
	qty := lua.CheckInteger(state, 3)
	state.PushBoolean(c.SetResultQuantity(uuid, qty))
	return 1
}

func craftRemoveResult(state *lua.State) int {
	c := checkCraft(state)
	state.PushBoolean(c.RemoveResult(lua.CheckString(state, 2)))
	return 1
}

func craftSetResultField(state *lua.State) int {
	c := checkCraft(state)
	uuid := lua.CheckString(state, 2)
	path := lua.CheckString(state, 3)
	if err := c.SetResultField(uuid, path, luaToGo(state, 4)); err != nil {
		lua.Errorf(state, "set_result_field: %s", err.Error())
	}
	return 0
}

func craftSetMaterialQuantity(state *lua.State) int {
	c := checkCraft(state)
	uuid := lua.CheckString(state, 2)
	qty := lua.CheckInteger(state, 3)
	state.PushBoolean(c.SetMaterialQuantity(uuid, qty))
	return 1
}

func pushEntries(state *lua.State, entries []Entry) {
	state.NewTable()
	for i, e := range entries {
		state.NewTable()
		state.PushString(e.UUID)
		state.SetField(-2, "uuid")
		state.PushString(e.Name)
		state.SetField(-2, "name")
		state.PushInteger(e.Quantity)
		state.SetField(-2, "quantity")
		state.PushBoolean(e.Consumed)
		state.SetField(-2, "consumed")
		state.RawSetInt(-2, i+1)
	}
}
