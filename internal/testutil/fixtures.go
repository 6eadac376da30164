package testutil

// ScenarioSource is a complete, valid bed document used across tests.
const ScenarioSource = `
bed { diameter = 5 cm; height = 10 cm; wall_thickness = 2 mm; }
particles { kind = "sphere"; diameter = 5 mm; count = 100; density = 2500 kg/m3; }
packing { method = "rigid_body"; gravity = -9.81 m/s2; }
export { formats = ["stl_binary"]; }
`
