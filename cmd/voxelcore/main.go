// Command voxelcore wires the mesher, world generator and pathfinder
// together behind a minimal glfw/OpenGL shell: it loads one chunk
// around the origin, meshes it on the worker pool, and renders it
// with a free-look camera driven by pointer deltas.
package main

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/camera"
	"voxelcore/internal/config"
	"voxelcore/internal/gpu"
	"voxelcore/internal/input"
	"voxelcore/internal/mathutil"
	"voxelcore/internal/meshing"
	"voxelcore/internal/noise"
	"voxelcore/internal/registry"
	"voxelcore/internal/scheduler"
	"voxelcore/internal/worldgen"
)

func init() { runtime.LockOSThread() }

const (
	winW = 1280
	winH = 720

	chunkSize = 32
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 pos;
layout(location = 1) in vec2 size;
layout(location = 2) in vec4 color;
layout(location = 3) in float ao;
layout(location = 4) in float dim;
layout(location = 5) in float dir;
layout(location = 6) in float mask;
layout(location = 7) in float wave;
layout(location = 8) in float texture_;
layout(location = 9) in float indices;
uniform mat4 view;
uniform mat4 proj;
out vec4 vColor;
void main() {
	vColor = color;
	gl_Position = proj * view * vec4(pos, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec4 vColor;
out vec4 FragColor;
void main() {
	FragColor = vColor;
}
`

func buildRegistry() (*registry.Registry, worldgen.BlockIDs) {
	reg := registry.New()

	reg.AddMaterialOfColor("rock", registry.RGBA{120, 120, 120, 255})
	reg.AddMaterialOfColor("dirt", registry.RGBA{110, 80, 50, 255})
	reg.AddMaterialOfColor("sand", registry.RGBA{210, 200, 150, 255})
	grassTop := reg.AddMaterialOfColor("grass_top", registry.RGBA{255, 255, 255, 255})
	reg.SetTint(grassTop, registry.RGBA{90, 200, 70, 255})
	reg.AddMaterialOfColor("snow", registry.RGBA{240, 240, 245, 255})
	reg.AddMaterialOfColor("water", registry.RGBA{60, 110, 200, 140})
	leavesMat := reg.AddMaterialOfColor("leaves", registry.RGBA{255, 255, 255, 255})
	reg.SetTint(leavesMat, registry.RGBA{60, 150, 60, 255})
	fencePost := reg.AddMaterialOfColor("fence_post", registry.RGBA{140, 110, 70, 255})

	ids := worldgen.BlockIDs{
		Rock:   reg.AddBlock([]string{"rock"}, true),
		Dirt:   reg.AddBlock([]string{"dirt"}, true),
		Sand:   reg.AddBlock([]string{"sand"}, true),
		Grass:  reg.AddBlock([]string{"grass_top", "dirt", "dirt"}, true),
		Snow:   reg.AddBlock([]string{"snow"}, true),
		Water:  reg.AddBlock([]string{"water"}, false),
		Leaves: reg.AddBlock([]string{"leaves"}, true),
	}

	// A fence post: a thin non-full model block, bypassing greedy
	// meshing entirely (F-4.3.1).
	reg.AddModelBlock(registry.Model{
		{
			From: [3]float32{0.4, 0, 0.4}, To: [3]float32{0.6, 1, 0.6},
			Faces: [6]registry.ModelFace{
				registry.FacePosX: {Material: fencePost},
				registry.FaceNegX: {Material: fencePost},
				registry.FacePosY: {Material: fencePost},
				registry.FaceNegY: {Material: fencePost},
				registry.FacePosZ: {Material: fencePost},
				registry.FaceNegZ: {Material: fencePost},
			},
		},
	})

	return reg, ids
}

func loadChunk(gen *worldgen.Generator, size int) *mathutil.Tensor3 {
	t := mathutil.NewTensor3(size, size, size)
	fill := gen.LoadChunk()
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			col := worldgen.NewTensorColumn(func(y int, block registry.BlockId) {
				t.Set(x, y, z, uint16(block))
			})
			fill(x, z, col)
		}
	}
	return t
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("voxelcore: glfw init failed: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winW, winH, "voxelcore", nil, nil)
	if err != nil {
		log.Fatalf("voxelcore: window creation failed: %v", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		log.Fatalf("voxelcore: gl init failed: %v", err)
	}
	glfw.SwapInterval(1)

	shader := gpu.CompileShader(vertexShader, fragmentShader)
	renderer := gpu.NewRenderer(shader)

	reg, blockIDs := buildRegistry()

	seed := config.GetWorldSeed()
	counter := noise.NewSeedCounterFrom(seed)
	params := worldgen.DefaultParams()
	params.SeaLevel = config.GetSeaLevel()
	params.CaveEnabled = config.GetCaves()
	gen := worldgen.New(counter, blockIDs, params)

	pool := meshing.NewWorkerPool(reg, 4, 64)
	defer pool.Shutdown()

	voxels := loadChunk(gen, chunkSize)
	results := make(chan meshing.MeshResult, 1)
	pool.SubmitJobBlocking(meshing.MeshJob{
		Coord:      meshing.ChunkCoord{X: 0, Y: 0, Z: 0},
		Voxels:     voxels,
		ResultChan: results,
	})
	result := <-results

	var solidMesh, waterMesh, customMesh *gpu.VoxelMeshHandle
	if result.Solid != nil && result.Solid.QuadCount() > 0 {
		solidMesh = renderer.AddVoxelMesh(result.Solid, true)
	}
	if result.Water != nil && result.Water.QuadCount() > 0 {
		waterMesh = renderer.AddVoxelMesh(result.Water, false)
	}
	if result.Custom != nil && result.Custom.QuadCount() > 0 {
		customMesh = renderer.AddVoxelMesh(result.Custom, true)
	}

	cam := camera.New(winW, winH)
	cam.Position = mgl32.Vec3{float32(chunkSize) / 2, float32(params.SeaLevel + 40), float32(chunkSize) / 2}
	poller := input.NewPoller(window)

	update := func(dt time.Duration) error {
		delta := poller.Sample()
		cam.ApplyDelta(delta.DX, delta.DY, delta.DScroll)
		return nil
	}

	render := func(dt time.Duration) error {
		gl.ClearColor(0.53, 0.81, 0.92, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		proj := cam.ProjectionMatrix()
		view := cam.ViewMatrix()
		shader.SetMatrix4("proj", &proj[0])
		shader.SetMatrix4("view", &view[0])

		drawMesh(solidMesh)
		drawMesh(waterMesh)
		drawMesh(customMesh)

		window.SwapBuffers()
		glfw.PollEvents()
		return nil
	}

	sched := scheduler.New(update, render)
	for !window.ShouldClose() {
		sched.Frame()
	}
}

func drawMesh(h *gpu.VoxelMeshHandle) {
	if h == nil {
		return
	}
	h.Draw()
}
