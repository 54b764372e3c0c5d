package camper

// Frame selects the body height class. Length and width are shared by all frames.
type Frame string

const (
	FrameMinimalist Frame = "minimalist"
	FrameStandard   Frame = "standard"
	FrameHeavy      Frame = "heavy"
)

// Frames lists the recognized frame values in catalog order.
var Frames = []Frame{FrameMinimalist, FrameStandard, FrameHeavy}

// Wheels selects the wheel package.
type Wheels string

const (
	WheelsStandard Wheels = "standard"
	WheelsOffroad  Wheels = "offroad"
	WheelsExtreme  Wheels = "extreme"
)

// WheelPackages lists the recognized wheel packages in catalog order.
var WheelPackages = []Wheels{WheelsStandard, WheelsOffroad, WheelsExtreme}

// Option names one boolean accessory flag. Values match the JSON field names.
type Option string

const (
	SidePanels      Option = "sidePanels"
	FrontPanel      Option = "frontPanel"
	RearPanel       Option = "rearPanel"
	DiamondPlate    Option = "diamondPlate"
	RoofPlatform    Option = "roofPlatform"
	RoofRack        Option = "roofRack"
	RoofTent        Option = "roofTent"
	RoofLadder      Option = "roofLadder"
	RearKitchen     Option = "rearKitchen"
	PropaneTank     Option = "propaneTank"
	KitchenCounter  Option = "kitchenCounter"
	SideAccessDoors Option = "sideAccessDoors"
	StorageBoxes    Option = "storageBoxes"
	JerryCanMounts  Option = "jerryCanMounts"
	ToolBox         Option = "toolBox"
	Fenders         Option = "fenders"
	RunningBoards   Option = "runningBoards"
	LightingKit     Option = "lightingKit"
	SolarPanel      Option = "solarPanel"
	WaterTank       Option = "waterTank"
	BatterySystem   Option = "batterySystem"
)

// AllOptions lists every accessory flag in declaration order.
var AllOptions = []Option{
	SidePanels, FrontPanel, RearPanel, DiamondPlate,
	RoofPlatform, RoofRack, RoofTent, RoofLadder,
	RearKitchen, PropaneTank, KitchenCounter, SideAccessDoors,
	StorageBoxes, JerryCanMounts, ToolBox, Fenders,
	RunningBoards, LightingKit, SolarPanel, WaterTank,
	BatterySystem,
}

// Config is one complete set of build choices. It is passed by value
// everywhere; nothing downstream mutates it.
type Config struct {
	Frame  Frame  `json:"frame"`
	Wheels Wheels `json:"wheels"`

	SidePanels      bool `json:"sidePanels"`
	FrontPanel      bool `json:"frontPanel"`
	RearPanel       bool `json:"rearPanel"`
	DiamondPlate    bool `json:"diamondPlate"`
	RoofPlatform    bool `json:"roofPlatform"`
	RoofRack        bool `json:"roofRack"`
	RoofTent        bool `json:"roofTent"`
	RoofLadder      bool `json:"roofLadder"`
	RearKitchen     bool `json:"rearKitchen"`
	PropaneTank     bool `json:"propaneTank"`
	KitchenCounter  bool `json:"kitchenCounter"`
	SideAccessDoors bool `json:"sideAccessDoors"`
	StorageBoxes    bool `json:"storageBoxes"`
	JerryCanMounts  bool `json:"jerryCanMounts"`
	ToolBox         bool `json:"toolBox"`
	Fenders         bool `json:"fenders"`
	RunningBoards   bool `json:"runningBoards"`
	LightingKit     bool `json:"lightingKit"`
	SolarPanel      bool `json:"solarPanel"`
	WaterTank       bool `json:"waterTank"`
	BatterySystem   bool `json:"batterySystem"`
}
