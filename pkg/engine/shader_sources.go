package engine

// Terrain vertex shader: positions come straight from the chunk mesh,
// the height (local z) is forwarded for tinting.
const terrainVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out float Height;

void main() {
    Height = aPos.z;
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

// Terrain fragment shader: sand -> grass -> rock -> snow by height
const terrainFragmentShaderSource = `
#version 410 core
in float Height;
out vec4 FragColor;

void main() {
    vec3 sand  = vec3(0.76, 0.70, 0.50);
    vec3 grass = vec3(0.25, 0.55, 0.20);
    vec3 rock  = vec3(0.45, 0.42, 0.40);
    vec3 snow  = vec3(0.95, 0.95, 0.97);

    vec3 color = mix(sand, grass, smoothstep(0.10, 0.25, Height));
    color = mix(color, rock, smoothstep(0.45, 0.60, Height));
    color = mix(color, snow, smoothstep(0.70, 0.85, Height));

    FragColor = vec4(color, 1.0);
}
`

const waterVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

const waterFragmentShaderSource = `
#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(0.10, 0.35, 0.75, 0.55);
}
`
