package script

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/Shopify/go-lua"
	"github.com/tidwall/gjson"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// LuaProvider evaluates sources as Lua chunks. Each call runs in a fresh
// state with only the base, string, table and math libraries. Arguments
// arrive as the chunk's varargs and as globals named after each Arg.
type LuaProvider struct{}

// NewLuaProvider creates a LuaProvider
func NewLuaProvider() *LuaProvider {
	return &LuaProvider{}
}

// Evaluate implements Provider.
func (p *LuaProvider) Evaluate(ctx context.Context, source string, args Args) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := newSandbox()

	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("%s: %v | %w", ErrMsgLoadFailed, err, domain.ErrScriptFailed)
	}
	for _, arg := range args {
		if arg.Name == "" {
			continue
		}
		pushValue(state, arg.Value)
		state.SetGlobal(arg.Name)
	}
	for _, arg := range args {
		pushValue(state, arg.Value)
	}
	if err := state.ProtectedCall(len(args), 1, 0); err != nil {
		return nil, fmt.Errorf("%s: %v | %w", ErrMsgRunFailed, err, domain.ErrScriptFailed)
	}

	result := luaToGo(state, -1)
	state.Pop(1)
	return result, nil
}

func newSandbox() *lua.State {
	state := lua.NewState()
	libs := []lua.RegistryFunction{
		{Name: "_G", Function: lua.BaseOpen},
		{Name: "string", Function: lua.StringOpen},
		{Name: "table", Function: lua.TableOpen},
		{Name: "math", Function: lua.MathOpen},
	}
	for _, lib := range libs {
		lua.Require(state, lib.Name, lib.Function, true)
		state.Pop(1)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		state.PushNil()
		state.SetGlobal(name)
	}
	registerCraftType(state)
	return state
}

// pushValue pushes a Go value. Structs and other composite values travel
// through their JSON form.
func pushValue(state *lua.State, v interface{}) {
	switch t := v.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(t)
	case string:
		state.PushString(t)
	case int:
		state.PushInteger(t)
	case int64:
		state.PushNumber(float64(t))
	case float64:
		state.PushNumber(t)
	case Craft:
		state.PushUserData(t)
		lua.SetMetaTableNamed(state, craftTypeName)
	case []interface{}:
		state.NewTable()
		for i, item := range t {
			pushValue(state, item)
			state.RawSetInt(-2, i+1)
		}
	case map[string]interface{}:
		state.NewTable()
		for k, item := range t {
			pushValue(state, item)
			state.SetField(-2, k)
		}
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			state.PushNil()
			return
		}
		pushValue(state, normalize(gjson.ParseBytes(raw).Value()))
	}
}

// normalize turns whole JSON numbers into ints so Lua sees integers.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case float64:
		return normalizeNumber(t)
	case []interface{}:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]interface{}:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	default:
		return v
	}
}

func luaToGo(state *lua.State, index int) interface{} {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

func tableToGo(state *lua.State, index int) interface{} {
	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]interface{}, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	output := map[string]interface{}{}
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func normalizeNumber(value float64) interface{} {
	if math.Mod(value, 1) == 0 && math.Abs(value) < 1<<53 {
		return int(value)
	}
	return value
}
