package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load 读取配置文件并反序列化到 out，同时监听文件变更热加载。
// path 为相对路径时从当前目录开始向上查找（方便从任意包目录跑测试）。
func Load(path string, out any) {
	resolved := resolve(path)
	if !fileExist(resolved) {
		panic(fmt.Sprintf("config file not exist, path=%v", resolved))
	}

	v := viper.New()
	v.SetConfigFile(resolved)
	v.OnConfigChange(func(e fsnotify.Event) {
		// 热加载失败不替换旧配置
		_ = v.Unmarshal(out)
	})
	v.WatchConfig()

	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}
	if err := v.Unmarshal(out); err != nil {
		panic(err)
	}
}

func resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	curDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return findUpward(curDir, path)
}

func findUpward(startDir, relPath string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, relPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("config file not exist, searched " + relPath + " from: " + startDir)
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
