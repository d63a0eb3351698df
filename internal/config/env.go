package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides replaces every setting tagged `env:"NAME"` whose variable
// is present in the environment. Sections are walked recursively.
func applyEnvOverrides(config *Config) error {
	return overrideSection(reflect.ValueOf(config).Elem())
}

func overrideSection(section reflect.Value) error {
	for _, field := range reflect.VisibleFields(section.Type()) {
		setting := section.FieldByIndex(field.Index)

		if field.Type.Kind() == reflect.Struct {
			if err := overrideSection(setting); err != nil {
				return err
			}
			continue
		}

		name, tagged := field.Tag.Lookup("env")
		if !tagged {
			continue
		}
		raw, present := os.LookupEnv(name)
		if !present {
			continue
		}

		if err := assignSetting(setting, raw); err != nil {
			return fmt.Errorf("%s=%q: %w", name, raw, err)
		}
	}
	return nil
}

func assignSetting(setting reflect.Value, raw string) error {
	switch setting.Kind() {
	case reflect.String:
		setting.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, setting.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an integer: %w", err)
		}
		setting.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("not a boolean: %w", err)
		}
		setting.SetBool(b)
	default:
		return fmt.Errorf("settings of kind %s cannot come from the environment", setting.Kind())
	}
	return nil
}
