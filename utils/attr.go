package utils

import (
	"encoding/json"

	"github.com/zooyer/dxfgeo/entities"
)

type xdataGroup struct {
	App    string `json:"app"`
	Values []any  `json:"values"`
}

// EncodeXData 按出现顺序把扩展数据序列化为 JSON 数组，没有扩展数据时返回空串
func EncodeXData(x entities.XData) string {
	if x.Empty() {
		return ""
	}

	groups := make([]xdataGroup, 0, len(x.Groups))
	for _, g := range x.Groups {
		values := g.Values
		if values == nil {
			values = []any{}
		}
		groups = append(groups, xdataGroup{App: g.App, Values: values})
	}

	data, err := json.Marshal(groups)
	if err != nil {
		return ""
	}
	return string(data)
}
