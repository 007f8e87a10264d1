package core

import "fmt"

// GroupCode 组码的语义分类，每个原始组码恰好对应一个分类
type GroupCode int

const (
	Unknown GroupCode = iota
	Type
	Text
	Name
	TextOrName2
	TextOrName3
	Handle
	LineTypeName
	TextStyleName
	LayerName
	VariableName
	X1
	X2
	X3
	X4
	XOther
	Y1
	Y2
	Y3
	Y4
	YOther
	Z1
	Z2
	Z3
	Z4
	ZOther
	Elevation
	Thickness
	Double1
	Double2
	Double3
	Double4
	Double5
	Double6
	Double7
	Double8
	Double9
	Angle1
	Angle2
	Angle3
	Angle4
	Angle5
	Angle6
	Angle7
	Angle8
	Angle9
	Visibility
	Color
	EntitiesFollow
	Space
	Int1
	Int2
	Int3
	Int4
	Int5
	Int6
	Int7
	Int8
	Int9
	Int32
	SubclassMarker
	ControlString
	ExtrusionX
	ExtrusionY
	ExtrusionZ
	Comment
	XDataASCIIString
	XDataApplicationName
	XDataControlString
	XDataLayerName
	XDataChunkOfBytes
	XDataDBHandle
	XDataX1
	XDataX2
	XDataX3
	XDataX4
	XDataY1
	XDataY2
	XDataY3
	XDataY4
	XDataZ1
	XDataZ2
	XDataZ3
	XDataZ4
	XDataDouble
	XDataDistance
	XDataScaleFactor
	XDataInt16
	XDataInt32
)

var fixedCodes = map[int]GroupCode{
	0:    Type,
	1:    Text,
	2:    Name,
	3:    TextOrName2,
	4:    TextOrName3,
	5:    Handle,
	6:    LineTypeName,
	7:    TextStyleName,
	8:    LayerName,
	9:    VariableName,
	38:   Elevation,
	39:   Thickness,
	60:   Visibility,
	62:   Color,
	66:   EntitiesFollow,
	67:   Space,
	100:  SubclassMarker,
	102:  ControlString,
	210:  ExtrusionX,
	220:  ExtrusionY,
	230:  ExtrusionZ,
	999:  Comment,
	1000: XDataASCIIString,
	1001: XDataApplicationName,
	1002: XDataControlString,
	1003: XDataLayerName,
	1004: XDataChunkOfBytes,
	1005: XDataDBHandle,
	1040: XDataDouble,
	1041: XDataDistance,
	1042: XDataScaleFactor,
	1070: XDataInt16,
	1071: XDataInt32,
}

// Classify 将原始组码映射为语义分类，未登记的组码归为 Unknown
func Classify(code int) GroupCode {
	if gc, ok := fixedCodes[code]; ok {
		return gc
	}
	switch {
	case code >= 10 && code <= 13:
		return X1 + GroupCode(code-10)
	case code >= 14 && code <= 18:
		return XOther
	case code >= 20 && code <= 23:
		return Y1 + GroupCode(code-20)
	case code >= 24 && code <= 28:
		return YOther
	case code >= 30 && code <= 33:
		return Z1 + GroupCode(code-30)
	case code >= 34 && code <= 37:
		return ZOther
	case code >= 40 && code <= 48:
		return Double1 + GroupCode(code-40)
	case code >= 50 && code <= 58:
		return Angle1 + GroupCode(code-50)
	case code >= 70 && code <= 78:
		return Int1 + GroupCode(code-70)
	case code >= 90 && code <= 99:
		return Int32
	case code >= 1010 && code <= 1013:
		return XDataX1 + GroupCode(code-1010)
	case code >= 1020 && code <= 1023:
		return XDataY1 + GroupCode(code-1020)
	case code >= 1030 && code <= 1033:
		return XDataZ1 + GroupCode(code-1030)
	}
	return Unknown
}

// IsXData 扩展数据组码（1000-1071）
func (g GroupCode) IsXData() bool {
	return g >= XDataASCIIString && g <= XDataInt32
}

func (g GroupCode) String() string {
	if name, ok := groupCodeNames[g]; ok {
		return name
	}
	return fmt.Sprintf("GroupCode(%d)", int(g))
}

var groupCodeNames = map[GroupCode]string{
	Unknown:              "UNKNOWN",
	Type:                 "TYPE",
	Text:                 "TEXT",
	Name:                 "NAME",
	TextOrName2:          "TEXT_OR_NAME_2",
	TextOrName3:          "TEXT_OR_NAME_3",
	Handle:               "HANDLE",
	LineTypeName:         "LINETYPE_NAME",
	TextStyleName:        "TEXT_STYLE_NAME",
	LayerName:            "LAYER_NAME",
	VariableName:         "VARIABLE_NAME",
	X1:                   "X_1",
	X2:                   "X_2",
	X3:                   "X_3",
	X4:                   "X_4",
	Y1:                   "Y_1",
	Y2:                   "Y_2",
	Y3:                   "Y_3",
	Y4:                   "Y_4",
	Z1:                   "Z_1",
	Z2:                   "Z_2",
	Z3:                   "Z_3",
	Z4:                   "Z_4",
	Thickness:            "THICKNESS",
	Double1:              "DOUBLE_1",
	Double2:              "DOUBLE_2",
	Double3:              "DOUBLE_3",
	Double4:              "DOUBLE_4",
	Angle1:               "ANGLE_1",
	Angle2:               "ANGLE_2",
	Visibility:           "VISIBILITY",
	Color:                "COLOR",
	Int1:                 "INT_1",
	Int2:                 "INT_2",
	Int3:                 "INT_3",
	Int4:                 "INT_4",
	XDataASCIIString:     "XDATA_ASCII_STRING",
	XDataApplicationName: "XDATA_APPLICATION_NAME",
	XDataControlString:   "XDATA_CONTROL_STRING",
	XDataInt16:           "XDATA_INT16",
	XDataInt32:           "XDATA_INT32",
}
